package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/order"
	"github.com/fekuna/omnipos-clinic-service/internal/order/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/order/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.OrderEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, key string, value []byte) error {
	var event model.OrderEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func setupUseCase(t *testing.T, publisher order.EventPublisher) (order.UseCase, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	uc := usecase.NewOrderUseCase(repository.NewMemoryRepository(), publisher, m, logger.NewNop())
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return uc, m
}

func TestGetOrders_NewestFirst(t *testing.T) {
	uc, _ := setupUseCase(t, nil)
	ctx := context.Background()

	all := uc.GetAllOrders(ctx)
	if len(all) != 4 {
		t.Fatalf("expected 4 orders, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatal("orders must be newest first")
		}
	}

	pending := uc.GetPendingOrders(ctx)
	if len(pending) != 2 || pending[0].ID != "order-4" || pending[1].ID != "order-3" {
		t.Errorf("unexpected pending orders: %v", pending)
	}
	if got := uc.GetOrdersByStatus(ctx, model.OrderDelivered); len(got) != 1 || got[0].ID != "order-1" {
		t.Errorf("unexpected delivered orders: %v", got)
	}

	if _, err := uc.GetOrderByID(ctx, "nope"); !errors.Is(err, order.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrderItemQuantity_RecomputesTotal(t *testing.T) {
	uc, _ := setupUseCase(t, nil)
	ctx := context.Background()

	edits := []struct {
		itemID   string
		quantity int
	}{
		{"2", 10},
		{"6", 7},
		{"2", 55},
	}
	for _, e := range edits {
		o, err := uc.UpdateOrderItemQuantity(ctx, "order-3", e.itemID, e.quantity)
		if err != nil {
			t.Fatalf("UpdateOrderItemQuantity failed: %v", err)
		}
		want := decimal.Zero
		for _, it := range o.Items {
			want = want.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		if !o.TotalPrice.Equal(want) {
			t.Errorf("total = %s, want %s", o.TotalPrice, want)
		}
	}

	o, _ := uc.GetOrderByID(ctx, "order-3")
	// 55 × 2.49 + 7 × 4.95
	if !o.TotalPrice.Equal(decimal.RequireFromString("171.60")) {
		t.Errorf("stored total = %s", o.TotalPrice)
	}

	if _, err := uc.UpdateOrderItemQuantity(ctx, "order-3", "99", 1); !errors.Is(err, order.ErrOrderItemNotFound) {
		t.Errorf("expected ErrOrderItemNotFound, got %v", err)
	}
	if _, err := uc.UpdateOrderItemQuantity(ctx, "nope", "2", 1); !errors.Is(err, order.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrderStatus_Stamps(t *testing.T) {
	publisher := &recordingPublisher{}
	uc, m := setupUseCase(t, publisher)
	ctx := context.Background()

	o, err := uc.UpdateOrderStatus(ctx, "order-3", model.OrderApproved, "5")
	if err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}
	if o.Status != model.OrderApproved || o.ApprovedBy != "5" || o.ApprovedByID != "5" || o.ApprovedAt == nil {
		t.Errorf("approval not stamped: %+v", o)
	}

	o, err = uc.UpdateOrderStatus(ctx, "order-2", model.OrderDelivered, "6")
	if err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}
	if o.DeliveryDate == nil {
		t.Error("delivery date not stamped")
	}

	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(publisher.events))
	}
	if publisher.events[0].EventType != model.EventOrderStatusChanged || publisher.events[0].PreviousStatus != model.OrderPending {
		t.Errorf("unexpected first event: %+v", publisher.events[0])
	}
	delivered := publisher.events[1]
	if delivered.EventType != model.EventOrderDelivered || len(delivered.Payload.Items) != 1 {
		t.Errorf("unexpected delivered event: %+v", delivered)
	}

	if got := testutil.ToFloat64(m.OrderTransitions.WithLabelValues("approved")); got != 1 {
		t.Errorf("approved counter = %v", got)
	}
}

func TestUpdateOrderStatus_NoLifecycleCheck(t *testing.T) {
	uc, _ := setupUseCase(t, nil)
	o, err := uc.UpdateOrderStatus(context.Background(), "order-1", model.OrderPending, "5")
	if err != nil {
		t.Fatalf("store must accept any status: %v", err)
	}
	if o.Status != model.OrderPending {
		t.Errorf("status = %s", o.Status)
	}
}

func TestTransitionOrderStatus_RacingApprovals(t *testing.T) {
	publisher := &recordingPublisher{}
	uc, _ := setupUseCase(t, publisher)
	ctx := context.Background()

	errs := make([]error, 20)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.TransitionOrderStatus(ctx, "order-4", model.OrderApproved, "5")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case !errors.Is(err, order.ErrInvalidTransition):
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one approval, got %d", succeeded)
	}
	if len(publisher.events) != 1 {
		t.Errorf("expected one status event, got %d", len(publisher.events))
	}
}

func TestTransitionOrderStatus_RejectsInvalidStep(t *testing.T) {
	uc, _ := setupUseCase(t, nil)
	ctx := context.Background()

	if _, err := uc.TransitionOrderStatus(ctx, "order-1", model.OrderPending, "5"); !errors.Is(err, order.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	o, err := uc.GetOrderByID(ctx, "order-1")
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != model.OrderDelivered {
		t.Errorf("rejected transition must not write, status = %s", o.Status)
	}

	if _, err := uc.TransitionOrderStatus(ctx, "order-2", model.OrderOrdered, "6"); err != nil {
		t.Errorf("approved -> ordered must pass: %v", err)
	}
}

func TestEditOrderItemQuantity_OnlyEditable(t *testing.T) {
	uc, _ := setupUseCase(t, nil)
	ctx := context.Background()

	if _, err := uc.EditOrderItemQuantity(ctx, "order-1", "1", 5); !errors.Is(err, order.ErrNotEditable) {
		t.Fatalf("expected ErrNotEditable, got %v", err)
	}
	o, err := uc.EditOrderItemQuantity(ctx, "order-4", "4", 10)
	if err != nil {
		t.Fatalf("EditOrderItemQuantity failed: %v", err)
	}
	if o.Items[0].Quantity != 10 {
		t.Errorf("quantity = %d", o.Items[0].Quantity)
	}
}

func TestSubmitOrder(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	uc, m := setupUseCase(t, publisher)
	ctx := context.Background()

	input := &dto.SubmitOrderInput{
		Items: []dto.SubmitOrderLine{
			{ItemID: "7", Name: "Desinfektionsmittel 1 l", Quantity: 3, Unit: "Flasche", Price: decimal.RequireFromString("6.80")},
			{ItemID: "5", Name: "Verbandmull steril 10x10 cm", Quantity: 100, Unit: "Stück", Price: decimal.RequireFromString("0.21")},
		},
		CreatedBy:   "Thomas Müller",
		CreatedByID: "2",
		Notes:       "Station 3",
	}
	first, err := uc.SubmitOrder(ctx, input)
	if err != nil {
		t.Fatalf("SubmitOrder must not fail on publish errors: %v", err)
	}
	second, _ := uc.SubmitOrder(ctx, input)

	if first.ID == second.ID {
		t.Error("order ids must be unique")
	}
	if first.Status != model.OrderPending {
		t.Errorf("status = %s", first.Status)
	}
	if !first.TotalPrice.Equal(decimal.RequireFromString("41.40")) {
		t.Errorf("total = %s", first.TotalPrice)
	}

	all := uc.GetAllOrders(ctx)
	if all[0].ID != second.ID {
		t.Error("new orders come first")
	}
	if len(publisher.events) != 2 || publisher.events[0].EventType != model.EventOrderSubmitted {
		t.Errorf("unexpected events: %+v", publisher.events)
	}
	if got := testutil.ToFloat64(m.OrdersSubmitted); got != 2 {
		t.Errorf("submitted counter = %v", got)
	}
}

func TestGetOrderByID_ReturnsCopy(t *testing.T) {
	uc, _ := setupUseCase(t, nil)
	ctx := context.Background()

	o, _ := uc.GetOrderByID(ctx, "order-3")
	o.Items[0].Quantity = 999

	again, _ := uc.GetOrderByID(ctx, "order-3")
	if again.Items[0].Quantity == 999 {
		t.Error("callers must not mutate stored orders")
	}
}
