package handler_test

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	authH "github.com/fekuna/omnipos-clinic-service/internal/auth/handler"
	authUCPkg "github.com/fekuna/omnipos-clinic-service/internal/auth/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/blobsync/handler"
	syncRepoPkg "github.com/fekuna/omnipos-clinic-service/internal/blobsync/repository"
	syncUCPkg "github.com/fekuna/omnipos-clinic-service/internal/blobsync/usecase"
	invUCPkg "github.com/fekuna/omnipos-clinic-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	userUCPkg "github.com/fekuna/omnipos-clinic-service/internal/user/usecase"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/middleware"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

type fixture struct {
	auth  clinicv1.AuthServiceClient
	sync  clinicv1.SyncServiceClient
	blobs *syncRepoPkg.MemoryClient
}

func setupServer(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()
	repo := repository.NewMemoryRepository()

	userUC, err := userUCPkg.NewUserUseCase(repo, bcrypt.MinCost, log)
	if err != nil {
		t.Fatalf("user usecase: %v", err)
	}
	authUC, err := authUCPkg.NewAuthUseCase(repo, userUC, authUCPkg.Config{DemoPassword: "1234", BcryptCost: bcrypt.MinCost}, nil, log)
	if err != nil {
		t.Fatalf("auth usecase: %v", err)
	}
	invUC := invUCPkg.NewInventoryUseCase(repo, nil, nil, nil, log)
	blobs := syncRepoPkg.NewMemoryClient()
	syncUC := syncUCPkg.NewSyncUseCase(repo, blobs, invUC, nil, log)
	t.Cleanup(syncUC.Close)
	for _, l := range []interface{ Load(context.Context) error }{userUC, authUC, invUC, syncUC} {
		if err := l.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.ContextInterceptor()))
	clinicv1.RegisterAuthServiceServer(srv, authH.NewAuthHandler(authUC, log))
	clinicv1.RegisterSyncServiceServer(srv, handler.NewSyncHandler(syncUC, authUC, log))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return fixture{
		auth:  clinicv1.NewAuthServiceClient(conn),
		sync:  clinicv1.NewSyncServiceClient(conn),
		blobs: blobs,
	}
}

func login(t *testing.T, f fixture, identifier string) context.Context {
	t.Helper()
	resp, err := f.auth.Login(context.Background(), &clinicv1.LoginRequest{Identifier: identifier, Password: "1234"})
	if err != nil {
		t.Fatalf("Login(%s): %v", identifier, err)
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.Token)
}

func ptr[T any](v T) *T { return &v }

func TestSyncService_RequiresConfigurePermission(t *testing.T) {
	f := setupServer(t)
	nurse := login(t, f, "Thomas")

	_, err := f.sync.GetStatus(nurse, &emptypb.Empty{})
	if st, _ := status.FromError(err); st.Code() != codes.PermissionDenied {
		t.Fatalf("err = %v, want PermissionDenied", err)
	}
}

func TestSyncService_ConfigureAndSync(t *testing.T) {
	f := setupServer(t)
	admin := login(t, f, "Markus")

	_, err := f.sync.SyncNow(admin, &emptypb.Empty{})
	if st, _ := status.FromError(err); st.Code() != codes.FailedPrecondition {
		t.Fatalf("SyncNow without config: err = %v", err)
	}

	st, err := f.sync.UpdateConfig(admin, &clinicv1.UpdateSyncConfigRequest{
		ConnectionString: ptr("AccessKeyId=AKIA;SecretAccessKey=secret"),
		ContainerName:    ptr("clinic-data"),
		PollingInterval:  ptr(int32(30)),
	})
	if err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if st.ContainerName != "clinic-data" || st.PollingInterval != 30 || st.IsEnabled {
		t.Errorf("status = %+v", st)
	}

	_, err = f.sync.UpdateConfig(admin, &clinicv1.UpdateSyncConfigRequest{PollingInterval: ptr(int32(0))})
	if s, _ := status.FromError(err); s.Code() != codes.InvalidArgument {
		t.Errorf("interval 0: err = %v, want InvalidArgument", err)
	}

	conn, err := f.sync.TestConnection(admin, &clinicv1.TestConnectionRequest{})
	if err != nil {
		t.Fatalf("TestConnection: %v", err)
	}
	if conn.Success || !strings.HasPrefix(conn.Message, "Verbindungsfehler: ") {
		t.Errorf("connection to missing container = %+v", conn)
	}

	f.blobs.Put("clinic-data", "inventory.csv", []byte("id,currentStock\n5,300\n"), time.Now())
	conn, err = f.sync.TestConnection(admin, &clinicv1.TestConnectionRequest{})
	if err != nil || !conn.Success {
		t.Fatalf("TestConnection = %+v, %v", conn, err)
	}

	res, err := f.sync.SyncNow(admin, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("SyncNow: %v", err)
	}
	if res.Status != "success" || res.FilesProcessed != 1 || res.RecordsProcessed != 1 {
		t.Errorf("result = %+v", res)
	}

	current, err := f.sync.GetStatus(admin, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if current.SyncStatus != "success" || current.LastSyncTime == nil || len(current.SyncErrors) != 1 {
		t.Errorf("status = %+v", current)
	}

	cleared, err := f.sync.ClearErrors(admin, &emptypb.Empty{})
	if err != nil || len(cleared.SyncErrors) != 0 {
		t.Errorf("ClearErrors = %+v, %v", cleared, err)
	}
}
