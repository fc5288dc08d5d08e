package order

import (
	"context"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/order/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
)

var (
	ErrOrderNotFound     = i18n.NewError("order.not_found")
	ErrOrderItemNotFound = i18n.NewError("order.item_not_found")
	ErrInvalidQuantity   = i18n.NewError("order.invalid_quantity")
	ErrInvalidTransition = i18n.NewError("order.invalid_transition")
	ErrNoItems           = i18n.NewError("order.no_items")
	ErrNotEditable       = i18n.NewError("order.not_editable")
)

// UseCase is the order store. UpdateOrderStatus and UpdateOrderItemQuantity
// record what they are told; TransitionOrderStatus and EditOrderItemQuantity
// enforce the lifecycle atomically with the write.
type UseCase interface {
	state.Saveable
	Load(ctx context.Context) error

	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetAllOrders(ctx context.Context) []model.Order
	GetOrdersByStatus(ctx context.Context, status model.OrderStatus) []model.Order
	GetPendingOrders(ctx context.Context) []model.Order

	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, userID string) (*model.Order, error)
	UpdateOrderItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (*model.Order, error)
	TransitionOrderStatus(ctx context.Context, id string, status model.OrderStatus, userID string) (*model.Order, error)
	EditOrderItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (*model.Order, error)
	SubmitOrder(ctx context.Context, input *dto.SubmitOrderInput) (*model.Order, error)
}

// EventPublisher is satisfied by *broker.KafkaProducer.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
