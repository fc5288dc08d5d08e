package handler_test

import (
	"context"
	"net"
	"testing"
	"time"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	authH "github.com/fekuna/omnipos-clinic-service/internal/auth/handler"
	authUCPkg "github.com/fekuna/omnipos-clinic-service/internal/auth/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/handler"
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
	"google.golang.org/protobuf/types/known/timestamppb"
)

type clients struct {
	auth      clinicv1.AuthServiceClient
	inventory clinicv1.InventoryServiceClient
}

func setupServer(t *testing.T) clients {
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
	for _, l := range []interface{ Load(context.Context) error }{userUC, authUC, invUC} {
		if err := l.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.ContextInterceptor()))
	clinicv1.RegisterAuthServiceServer(srv, authH.NewAuthHandler(authUC, log))
	clinicv1.RegisterInventoryServiceServer(srv, handler.NewInventoryHandler(invUC, authUC, log))
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

	return clients{
		auth:      clinicv1.NewAuthServiceClient(conn),
		inventory: clinicv1.NewInventoryServiceClient(conn),
	}
}

func login(t *testing.T, c clients, identifier string) context.Context {
	t.Helper()
	resp, err := c.auth.Login(context.Background(), &clinicv1.LoginRequest{Identifier: identifier, Password: "1234"})
	if err != nil {
		t.Fatalf("Login(%s): %v", identifier, err)
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.Token)
}

func wantCode(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok || st.Code() != code {
		t.Fatalf("err = %v, want code %s", err, code)
	}
	return st
}

func TestInventoryService_BarcodeLookup(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Sarah")

	resp, err := c.inventory.GetItemByBarcode(ctx, &clinicv1.GetItemByBarcodeRequest{Barcode: "4006381333931"})
	if err != nil {
		t.Fatalf("GetItemByBarcode: %v", err)
	}
	if resp.Item.Id != "1" || resp.Item.Price != "0.12" {
		t.Errorf("item = %+v", resp.Item)
	}

	_, err = c.inventory.GetItemByBarcode(ctx, &clinicv1.GetItemByBarcodeRequest{Barcode: "0000000000000"})
	st := wantCode(t, err, codes.NotFound)
	if st.Message() != "Artikel nicht gefunden" {
		t.Errorf("message = %q", st.Message())
	}
}

func TestInventoryService_UpdateStock(t *testing.T) {
	c := setupServer(t)

	doctor := login(t, c, "Sarah")
	_, err := c.inventory.UpdateStock(doctor, &clinicv1.UpdateStockRequest{ItemId: "1", NewStock: 150, Type: "withdrawal"})
	wantCode(t, err, codes.PermissionDenied)

	nurse := login(t, c, "Thomas")
	_, err = c.inventory.UpdateStock(nurse, &clinicv1.UpdateStockRequest{ItemId: "1", NewStock: 150, Type: "gift"})
	st := wantCode(t, err, codes.InvalidArgument)
	if st.Message() != "Unbekannte Buchungsart: gift" {
		t.Errorf("message = %q", st.Message())
	}

	_, err = c.inventory.UpdateStock(nurse, &clinicv1.UpdateStockRequest{ItemId: "1", NewStock: -1, Type: "withdrawal"})
	wantCode(t, err, codes.InvalidArgument)

	resp, err := c.inventory.UpdateStock(nurse, &clinicv1.UpdateStockRequest{ItemId: "1", NewStock: 150, Type: "withdrawal", Notes: "Station 3"})
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if resp.Item.CurrentStock != 150 || !resp.Item.IsLowStock {
		t.Errorf("item = %+v", resp.Item)
	}
	if resp.Transaction.Quantity != 300 || resp.Transaction.UserId != "2" {
		t.Errorf("transaction = %+v", resp.Transaction)
	}

	alerts, err := c.inventory.ListAlerts(nurse, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}
	last := alerts.Alerts[len(alerts.Alerts)-1]
	if alerts.UnreadCount != 4 || last.ItemId != "1" || last.Type != "low_stock" {
		t.Errorf("alerts = %d unread, last = %+v", alerts.UnreadCount, last)
	}
}

func TestInventoryService_CreateItem(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Thomas")

	_, err := c.inventory.CreateItem(ctx, &clinicv1.CreateItemRequest{Item: &clinicv1.ItemInput{Name: "Pflaster", Price: "abc"}})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.inventory.CreateItem(ctx, &clinicv1.CreateItemRequest{Item: &clinicv1.ItemInput{Name: "Pflaster", Barcode: "4006381333931"}})
	wantCode(t, err, codes.AlreadyExists)

	expiry := time.Now().AddDate(1, 0, 0).UTC().Truncate(time.Second)
	resp, err := c.inventory.CreateItem(ctx, &clinicv1.CreateItemRequest{Item: &clinicv1.ItemInput{
		Name:         "Pflaster",
		Category:     "Verbandsmaterial",
		CurrentStock: 10,
		MinStock:     20,
		Unit:         "Packung",
		Price:        "3.5",
		ExpiryDate:   timestamppb.New(expiry),
	}})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if resp.Item.Id == "" || resp.Item.Price != "3.50" || !resp.Item.IsLowStock {
		t.Errorf("item = %+v", resp.Item)
	}

	got, err := c.inventory.GetItem(ctx, &clinicv1.GetItemRequest{Id: resp.Item.Id})
	if err != nil || got.Item.Name != "Pflaster" {
		t.Fatalf("GetItem = %+v, %v", got, err)
	}
	if !got.Item.ExpiryDate.AsTime().Equal(expiry) {
		t.Errorf("expiry = %v, want %v", got.Item.ExpiryDate.AsTime(), expiry)
	}
	if got.Item.LastUpdated == nil {
		t.Error("lastUpdated not set")
	}
}

func TestInventoryService_MarkAlertAsRead(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Sarah")

	if _, err := c.inventory.MarkAlertAsRead(ctx, &clinicv1.MarkAlertAsReadRequest{Id: "alert-1"}); err != nil {
		t.Fatalf("MarkAlertAsRead: %v", err)
	}
	alerts, _ := c.inventory.ListAlerts(ctx, &emptypb.Empty{})
	if alerts.UnreadCount != 2 {
		t.Errorf("unread = %d, want 2", alerts.UnreadCount)
	}

	_, err := c.inventory.MarkAlertAsRead(ctx, &clinicv1.MarkAlertAsReadRequest{Id: "alert-404"})
	wantCode(t, err, codes.NotFound)
}
