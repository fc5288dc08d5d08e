package handler_test

import (
	"context"
	"net"
	"testing"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	authH "github.com/fekuna/omnipos-clinic-service/internal/auth/handler"
	authUCPkg "github.com/fekuna/omnipos-clinic-service/internal/auth/usecase"
	invUCPkg "github.com/fekuna/omnipos-clinic-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/order/handler"
	orderUCPkg "github.com/fekuna/omnipos-clinic-service/internal/order/usecase"
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

type clients struct {
	auth  clinicv1.AuthServiceClient
	order clinicv1.OrderServiceClient
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
	orderUC := orderUCPkg.NewOrderUseCase(repo, nil, nil, log)
	for _, l := range []interface{ Load(context.Context) error }{userUC, authUC, invUC, orderUC} {
		if err := l.Load(ctx); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.ContextInterceptor()))
	clinicv1.RegisterAuthServiceServer(srv, authH.NewAuthHandler(authUC, log))
	clinicv1.RegisterOrderServiceServer(srv, handler.NewOrderHandler(orderUC, invUC, authUC, log))
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
		auth:  clinicv1.NewAuthServiceClient(conn),
		order: clinicv1.NewOrderServiceClient(conn),
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

func TestOrderService_RequiresSession(t *testing.T) {
	c := setupServer(t)
	_, err := c.order.GetPendingOrders(context.Background(), &emptypb.Empty{})
	st := wantCode(t, err, codes.Unauthenticated)
	if st.Message() != "Benutzer nicht authentifiziert" {
		t.Errorf("message = %q", st.Message())
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Thomas")

	all, err := c.order.ListOrders(ctx, &clinicv1.ListOrdersRequest{})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(all.Orders) != 4 || all.Orders[0].Id != "order-4" {
		t.Fatalf("orders = %d, first = %s", len(all.Orders), all.Orders[0].Id)
	}

	pending, err := c.order.GetPendingOrders(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetPendingOrders: %v", err)
	}
	for _, o := range pending.Orders {
		if o.Status != "pending" {
			t.Errorf("order %s has status %s", o.Id, o.Status)
		}
	}

	_, err = c.order.GetOrder(ctx, &clinicv1.GetOrderRequest{Id: "order-99"})
	wantCode(t, err, codes.NotFound)
}

func TestOrderService_ApprovalNeedsPermission(t *testing.T) {
	c := setupServer(t)

	doctor := login(t, c, "Sarah")
	_, err := c.order.UpdateOrderStatus(doctor, &clinicv1.UpdateOrderStatusRequest{Id: "order-3", Status: "approved"})
	wantCode(t, err, codes.PermissionDenied)

	admin := login(t, c, "Markus")
	resp, err := c.order.UpdateOrderStatus(admin, &clinicv1.UpdateOrderStatusRequest{Id: "order-3", Status: "approved"})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if resp.Order.Status != "approved" || resp.Order.ApprovedById != "5" || resp.Order.ApprovedAt == nil {
		t.Errorf("approved order = %+v", resp.Order)
	}
}

func TestOrderService_EnforcesLifecycle(t *testing.T) {
	c := setupServer(t)
	admin := login(t, c, "Markus")

	_, err := c.order.UpdateOrderStatus(admin, &clinicv1.UpdateOrderStatusRequest{Id: "order-4", Status: "delivered"})
	st := wantCode(t, err, codes.FailedPrecondition)
	if st.Message() != "Statuswechsel von pending nach delivered ist nicht erlaubt" {
		t.Errorf("message = %q", st.Message())
	}

	for _, next := range []string{"approved", "ordered", "shipped", "delivered"} {
		resp, err := c.order.UpdateOrderStatus(admin, &clinicv1.UpdateOrderStatusRequest{Id: "order-4", Status: next})
		if err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
		if resp.Order.Status != next {
			t.Fatalf("status = %s, want %s", resp.Order.Status, next)
		}
	}

	_, err = c.order.UpdateOrderStatus(admin, &clinicv1.UpdateOrderStatusRequest{Id: "order-4", Status: "cancelled"})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestOrderService_UpdateQuantity(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Thomas")

	_, err := c.order.UpdateOrderItemQuantity(ctx, &clinicv1.UpdateOrderItemQuantityRequest{OrderId: "order-3", ItemId: "2", Quantity: 0})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.order.UpdateOrderItemQuantity(ctx, &clinicv1.UpdateOrderItemQuantityRequest{OrderId: "order-1", ItemId: "1", Quantity: 3})
	wantCode(t, err, codes.FailedPrecondition)

	resp, err := c.order.UpdateOrderItemQuantity(ctx, &clinicv1.UpdateOrderItemQuantityRequest{OrderId: "order-3", ItemId: "2", Quantity: 55})
	if err != nil {
		t.Fatalf("UpdateOrderItemQuantity: %v", err)
	}
	if resp.Order.TotalPrice != "235.95" {
		t.Errorf("total = %s, want 235.95", resp.Order.TotalPrice)
	}
}

func TestOrderService_SubmitOrder(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Sarah")

	resp, err := c.order.SubmitOrder(ctx, &clinicv1.SubmitOrderRequest{
		Items:    []*clinicv1.SubmitOrderLine{{ItemId: "7", Quantity: 5}},
		Supplier: "Schülke",
	})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	o := resp.Order
	if o.Status != "pending" || o.CreatedById != "1" || o.CreatedBy != "Dr. Sarah Schmidt" {
		t.Errorf("order = %+v", o)
	}
	if len(o.Items) != 1 || o.Items[0].Name != "Desinfektionsmittel 1 l" || o.Items[0].Price != "6.80" {
		t.Errorf("line not filled from inventory: %+v", o.Items)
	}
	if o.TotalPrice != "34.00" {
		t.Errorf("total = %s, want 34.00", o.TotalPrice)
	}

	pending, _ := c.order.GetPendingOrders(ctx, &emptypb.Empty{})
	if pending.Orders[0].Id != o.Id {
		t.Errorf("new order is not listed first")
	}
}

func TestOrderService_SubmitOrderValidation(t *testing.T) {
	c := setupServer(t)
	ctx := login(t, c, "Sarah")

	_, err := c.order.SubmitOrder(ctx, &clinicv1.SubmitOrderRequest{})
	st := wantCode(t, err, codes.InvalidArgument)
	if st.Message() != "Keine Artikel ausgewählt" {
		t.Errorf("message = %q", st.Message())
	}

	en := metadata.AppendToOutgoingContext(ctx, "accept-language", "en-US,en;q=0.9")
	_, err = c.order.SubmitOrder(en, &clinicv1.SubmitOrderRequest{})
	st = wantCode(t, err, codes.InvalidArgument)
	if st.Message() != "No items selected" {
		t.Errorf("english message = %q", st.Message())
	}

	_, err = c.order.SubmitOrder(ctx, &clinicv1.SubmitOrderRequest{
		Items: []*clinicv1.SubmitOrderLine{{ItemId: "404", Quantity: 1}},
	})
	wantCode(t, err, codes.NotFound)

	_, err = c.order.SubmitOrder(ctx, &clinicv1.SubmitOrderRequest{
		Items: []*clinicv1.SubmitOrderLine{{ItemId: "7", Quantity: -1}},
	})
	wantCode(t, err, codes.InvalidArgument)
}
