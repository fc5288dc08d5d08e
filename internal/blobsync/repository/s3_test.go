package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
)

// fakeS3 answers the few path-style S3 requests the client issues.
type fakeS3 struct {
	bucket  string
	objects map[string]string
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	path := strings.TrimPrefix(req.URL.Path, "/")
	bucket, key, _ := strings.Cut(path, "/")
	if bucket != f.bucket {
		return respond(http.StatusNotFound, "<Error><Code>NoSuchBucket</Code></Error>"), nil
	}

	switch {
	case req.Method == http.MethodHead && key == "":
		return respond(http.StatusOK, ""), nil
	case req.Method == http.MethodGet && req.URL.Query().Get("list-type") == "2":
		keys := make([]string, 0, len(f.objects))
		for k := range f.objects {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult><IsTruncated>false</IsTruncated>`)
		for _, k := range keys {
			fmt.Fprintf(&b, `<Contents><Key>%s</Key><Size>%d</Size><ETag>"etag-%s"</ETag><LastModified>2026-01-01T00:00:00Z</LastModified></Contents>`,
				k, len(f.objects[k]), k)
		}
		b.WriteString(`</ListBucketResult>`)
		return respond(http.StatusOK, b.String()), nil
	case req.Method == http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			return respond(http.StatusNotFound, "<Error><Code>NoSuchKey</Code></Error>"), nil
		}
		return respond(http.StatusOK, body), nil
	}
	return respond(http.StatusMethodNotAllowed, ""), nil
}

func respond(code int, body string) *http.Response {
	return &http.Response{
		StatusCode:    code,
		Header:        http.Header{"Content-Type": {"application/xml"}},
		Body:          io.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
	}
}

func newFakeClient() *S3Client {
	fake := &fakeS3{
		bucket: "clinic-data",
		objects: map[string]string{
			"inventory-2026.csv": "id,currentStock\n1,400\n",
			"orders.json":        "[]",
		},
	}
	return NewS3Client(S3Config{
		Endpoint:   "https://s3.test.local",
		PathStyle:  true,
		HTTPClient: &http.Client{Transport: fake},
	})
}

const testConnection = "AccessKeyId=AKIA;SecretAccessKey=secret;Region=eu-central-1"

func TestS3Client_ListAndDownload(t *testing.T) {
	ctx := context.Background()
	c := newFakeClient()
	target := blobsync.Target{ConnectionString: testConnection, ContainerName: "clinic-data"}

	if err := c.TestConnection(ctx, target); err != nil {
		t.Fatalf("TestConnection: %v", err)
	}

	blobs, err := c.ListBlobs(ctx, target)
	if err != nil {
		t.Fatalf("ListBlobs: %v", err)
	}
	if len(blobs) != 2 || blobs[0].Name != "inventory-2026.csv" || blobs[1].Name != "orders.json" {
		t.Fatalf("ListBlobs = %+v", blobs)
	}
	if blobs[0].ETag != "etag-inventory-2026.csv" {
		t.Errorf("etag = %q, want quotes stripped", blobs[0].ETag)
	}
	if blobs[0].LastModified.Year() != 2026 {
		t.Errorf("last modified = %v", blobs[0].LastModified)
	}

	data, err := c.Download(ctx, target, "inventory-2026.csv")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(data) != "id,currentStock\n1,400\n" {
		t.Errorf("Download = %q", data)
	}
}

func TestS3Client_UnknownBucket(t *testing.T) {
	c := newFakeClient()
	err := c.TestConnection(context.Background(), blobsync.Target{
		ConnectionString: testConnection,
		ContainerName:    "missing",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown bucket")
	}
}

func TestParseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    connection
		wantErr bool
	}{
		{
			name: "s3 keys",
			raw:  "AccessKeyId=AKIA; SecretAccessKey=secret; Region=eu-central-1; Endpoint=http://minio:9000",
			want: connection{AccessKeyID: "AKIA", SecretAccessKey: "secret", Region: "eu-central-1", Endpoint: "http://minio:9000"},
		},
		{
			name: "azure keys",
			raw:  "DefaultEndpointsProtocol=https;AccountName=clinic;AccountKey=abc==;BlobEndpoint=https://blob.local",
			want: connection{AccessKeyID: "clinic", SecretAccessKey: "abc==", Endpoint: "https://blob.local"},
		},
		{
			name: "bare endpoint",
			raw:  "https://storage.local",
			want: connection{Endpoint: "https://storage.local"},
		},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "garbage", raw: "not a connection string", wantErr: true},
		{name: "key without secret", raw: "AccessKeyId=AKIA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConnectionString(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AccessKeyID != tt.want.AccessKeyID || got.SecretAccessKey != tt.want.SecretAccessKey ||
				got.Region != tt.want.Region || got.Endpoint != tt.want.Endpoint {
				t.Errorf("parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}
