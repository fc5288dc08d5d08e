package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/order"
	"github.com/fekuna/omnipos-clinic-service/internal/order/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderUseCase struct {
	doc       *state.Document[orderBook]
	publisher order.EventPublisher
	metrics   *metrics.Metrics
	logger    logger.ZapLogger
	now       func() time.Time
}

// NewOrderUseCase builds the order store. publisher may be nil.
func NewOrderUseCase(repo state.Repository, publisher order.EventPublisher, m *metrics.Metrics, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		doc:       state.NewDocument(state.BucketOrder, repo, seedOrders(time.Now())),
		publisher: publisher,
		metrics:   m,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *orderUseCase) Name() string                   { return uc.doc.Name() }
func (uc *orderUseCase) Dirty() bool                    { return uc.doc.Dirty() }
func (uc *orderUseCase) Save(ctx context.Context) error { return uc.doc.Save(ctx) }
func (uc *orderUseCase) Load(ctx context.Context) error { return uc.doc.Load(ctx) }

func (uc *orderUseCase) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var found *model.Order
	uc.doc.View(func(b *orderBook) {
		if i := indexOfOrder(b.Orders, id); i >= 0 {
			o := cloneOrder(b.Orders[i])
			found = &o
		}
	})
	if found == nil {
		return nil, order.ErrOrderNotFound
	}
	return found, nil
}

func (uc *orderUseCase) GetAllOrders(ctx context.Context) []model.Order {
	return uc.filter(func(*model.Order) bool { return true })
}

func (uc *orderUseCase) GetOrdersByStatus(ctx context.Context, status model.OrderStatus) []model.Order {
	return uc.filter(func(o *model.Order) bool { return o.Status == status })
}

func (uc *orderUseCase) GetPendingOrders(ctx context.Context) []model.Order {
	return uc.GetOrdersByStatus(ctx, model.OrderPending)
}

// UpdateOrderStatus sets the status without checking the lifecycle.
// Approval records userID both as approver id and as approvedBy.
func (uc *orderUseCase) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, userID string) (*model.Order, error) {
	return uc.setStatus(ctx, id, status, userID, nil)
}

// TransitionOrderStatus is UpdateOrderStatus guarded by the order lifecycle.
// The check runs under the document lock, so of two racing transitions out of
// the same status only one lands.
func (uc *orderUseCase) TransitionOrderStatus(ctx context.Context, id string, status model.OrderStatus, userID string) (*model.Order, error) {
	return uc.setStatus(ctx, id, status, userID, func(o *model.Order) error {
		if !o.Status.CanTransitionTo(status) {
			return order.ErrInvalidTransition.With(map[string]any{
				"From": string(o.Status),
				"To":   string(status),
			})
		}
		return nil
	})
}

func (uc *orderUseCase) setStatus(ctx context.Context, id string, status model.OrderStatus, userID string, guard func(*model.Order) error) (*model.Order, error) {
	now := uc.now()
	var (
		updated  model.Order
		previous model.OrderStatus
	)
	err := uc.doc.Update(func(b *orderBook) error {
		i := indexOfOrder(b.Orders, id)
		if i < 0 {
			return order.ErrOrderNotFound
		}
		if guard != nil {
			if err := guard(&b.Orders[i]); err != nil {
				return err
			}
		}
		o := cloneOrder(b.Orders[i])
		previous = o.Status
		o.Status = status
		switch status {
		case model.OrderApproved:
			o.ApprovedByID = userID
			o.ApprovedBy = userID
			o.ApprovedAt = &now
		case model.OrderDelivered:
			o.DeliveryDate = &now
		}
		b.Orders[i] = o
		updated = cloneOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.OrderStatusChanged(string(status))
	uc.logger.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	eventType := model.EventOrderStatusChanged
	if status == model.OrderDelivered {
		eventType = model.EventOrderDelivered
	}
	uc.publish(ctx, model.OrderEvent{
		EventType:      eventType,
		PreviousStatus: previous,
		Payload:        updated,
		UserID:         userID,
	})
	return &updated, nil
}

// UpdateOrderItemQuantity replaces one line quantity and recomputes the
// order total.
func (uc *orderUseCase) UpdateOrderItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (*model.Order, error) {
	return uc.setQuantity(orderID, itemID, quantity, false)
}

// EditOrderItemQuantity is UpdateOrderItemQuantity restricted to orders that
// are still editable, checked under the document lock.
func (uc *orderUseCase) EditOrderItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (*model.Order, error) {
	return uc.setQuantity(orderID, itemID, quantity, true)
}

func (uc *orderUseCase) setQuantity(orderID, itemID string, quantity int, editableOnly bool) (*model.Order, error) {
	var updated model.Order
	err := uc.doc.Update(func(b *orderBook) error {
		i := indexOfOrder(b.Orders, orderID)
		if i < 0 {
			return order.ErrOrderNotFound
		}
		if editableOnly && !b.Orders[i].Status.Editable() {
			return order.ErrNotEditable
		}
		o := cloneOrder(b.Orders[i])
		found := false
		for j := range o.Items {
			if o.Items[j].ItemID == itemID {
				o.Items[j].Quantity = quantity
				found = true
			}
		}
		if !found {
			return order.ErrOrderItemNotFound
		}
		o.TotalPrice = model.OrderTotal(o.Items)
		b.Orders[i] = o
		updated = cloneOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *orderUseCase) SubmitOrder(ctx context.Context, input *dto.SubmitOrderInput) (*model.Order, error) {
	items := make([]model.OrderItem, len(input.Items))
	for i, line := range input.Items {
		items[i] = model.OrderItem{
			ItemID:     line.ItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Unit:       line.Unit,
			Price:      line.Price,
			ExpiryDate: line.ExpiryDate,
		}
	}

	o := model.Order{
		ID:          uuid.New().String(),
		Status:      model.OrderPending,
		CreatedAt:   uc.now(),
		CreatedBy:   input.CreatedBy,
		CreatedByID: input.CreatedByID,
		Items:       items,
		Supplier:    input.Supplier,
		Notes:       input.Notes,
		TotalPrice:  model.OrderTotal(items),
	}

	_ = uc.doc.Update(func(b *orderBook) error {
		b.Orders = append([]model.Order{cloneOrder(o)}, b.Orders...)
		return nil
	})

	uc.metrics.OrderSubmitted()
	uc.logger.Info("order submitted",
		zap.String("order_id", o.ID),
		zap.String("created_by", o.CreatedByID),
		zap.String("total", o.TotalPrice.String()),
	)
	uc.publish(ctx, model.OrderEvent{
		EventType: model.EventOrderSubmitted,
		Payload:   o,
		UserID:    input.CreatedByID,
	})
	return &o, nil
}

// publish sends an order event. Failures are logged; the state change has
// already happened.
func (uc *orderUseCase) publish(ctx context.Context, event model.OrderEvent) {
	if uc.publisher == nil {
		return
	}
	event.EventID = uuid.New().String()
	event.Timestamp = uc.now()

	value, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to encode order event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, event.Payload.ID, value); err != nil {
		uc.logger.Error("failed to publish order event",
			zap.String("order_id", event.Payload.ID),
			zap.String("event_type", string(event.EventType)),
			zap.Error(err),
		)
	}
}

// filter returns matching orders, newest first.
func (uc *orderUseCase) filter(keep func(*model.Order) bool) []model.Order {
	var out []model.Order
	uc.doc.View(func(b *orderBook) {
		for i := range b.Orders {
			if keep(&b.Orders[i]) {
				out = append(out, cloneOrder(b.Orders[i]))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func cloneOrder(o model.Order) model.Order {
	o.Items = append([]model.OrderItem(nil), o.Items...)
	return o
}

func indexOfOrder(orders []model.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
