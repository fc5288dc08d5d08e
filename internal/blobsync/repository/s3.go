package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
)

// S3Config holds the defaults used when a connection string leaves a value
// out.
type S3Config struct {
	Region    string
	Endpoint  string
	PathStyle bool

	// HTTPClient replaces the SDK transport, e.g. in tests.
	HTTPClient *http.Client
}

// S3Client reads containers from an S3-compatible store. The container
// name is the bucket.
type S3Client struct {
	cfg S3Config
}

func NewS3Client(cfg S3Config) *S3Client {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return &S3Client{cfg: cfg}
}

// connection is a parsed connection string. Both S3 style keys
// (AccessKeyId, SecretAccessKey, Region, Endpoint) and Azure style keys
// (AccountName, AccountKey, BlobEndpoint) are understood.
type connection struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
	Endpoint        string
	PathStyle       *bool
}

func parseConnectionString(raw string) (connection, error) {
	var conn connection
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return conn, fmt.Errorf("empty connection string")
	}
	if !strings.Contains(raw, "=") {
		if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
			conn.Endpoint = raw
			return conn, nil
		}
		return conn, fmt.Errorf("invalid connection string")
	}

	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return conn, fmt.Errorf("invalid connection string segment %q", part)
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "accesskeyid", "accountname":
			conn.AccessKeyID = value
		case "secretaccesskey", "accountkey":
			conn.SecretAccessKey = value
		case "sessiontoken":
			conn.SessionToken = value
		case "region":
			conn.Region = value
		case "endpoint", "blobendpoint":
			conn.Endpoint = value
		case "pathstyle":
			b := strings.EqualFold(value, "true")
			conn.PathStyle = &b
		}
	}
	if (conn.AccessKeyID == "") != (conn.SecretAccessKey == "") {
		return conn, fmt.Errorf("connection string needs both key id and secret")
	}
	return conn, nil
}

func (c *S3Client) client(ctx context.Context, connectionString string) (*s3.Client, error) {
	conn, err := parseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}

	region := c.cfg.Region
	if conn.Region != "" {
		region = conn.Region
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if conn.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conn.AccessKeyID, conn.SecretAccessKey, conn.SessionToken),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := c.cfg.Endpoint
	if conn.Endpoint != "" {
		endpoint = conn.Endpoint
	}
	pathStyle := c.cfg.PathStyle
	if conn.PathStyle != nil {
		pathStyle = *conn.PathStyle
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = pathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		if c.cfg.HTTPClient != nil {
			o.HTTPClient = c.cfg.HTTPClient
		}
	}), nil
}

func (c *S3Client) TestConnection(ctx context.Context, target blobsync.Target) error {
	client, err := c.client(ctx, target.ConnectionString)
	if err != nil {
		return err
	}
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(target.ContainerName)}); err != nil {
		return fmt.Errorf("head bucket %s: %w", target.ContainerName, err)
	}
	return nil
}

func (c *S3Client) ListBlobs(ctx context.Context, target blobsync.Target) ([]model.BlobInfo, error) {
	client, err := c.client(ctx, target.ConnectionString)
	if err != nil {
		return nil, err
	}

	var infos []model.BlobInfo
	pager := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: aws.String(target.ContainerName),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", target.ContainerName, err)
		}
		for _, obj := range page.Contents {
			infos = append(infos, model.BlobInfo{
				Name:         aws.ToString(obj.Key),
				LastModified: aws.ToTime(obj.LastModified),
				ETag:         strings.Trim(aws.ToString(obj.ETag), `"`),
				Size:         aws.ToInt64(obj.Size),
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (c *S3Client) Download(ctx context.Context, target blobsync.Target, name string) ([]byte, error) {
	client, err := c.client(ctx, target.ConnectionString)
	if err != nil {
		return nil, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(target.ContainerName),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
