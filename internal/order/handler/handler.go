package handler

import (
	"context"
	"errors"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/order"
	"github.com/fekuna/omnipos-clinic-service/internal/order/dto"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type OrderHandler struct {
	clinicv1.UnimplementedOrderServiceServer
	uc          order.UseCase
	inventoryUC inventory.UseCase
	authUC      auth.UseCase
	logger      logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, inventoryUC inventory.UseCase, authUC auth.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:          uc,
		inventoryUC: inventoryUC,
		authUC:      authUC,
		logger:      log,
	}
}

func (h *OrderHandler) GetOrder(ctx context.Context, req *clinicv1.GetOrderRequest) (*clinicv1.OrderResponse, error) {
	if _, err := auth.RequireSession(ctx, h.authUC); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	o, err := h.uc.GetOrderByID(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.OrderResponse{Order: mapOrder(o)}, nil
}

func (h *OrderHandler) ListOrders(ctx context.Context, req *clinicv1.ListOrdersRequest) (*clinicv1.ListOrdersResponse, error) {
	if _, err := auth.RequireSession(ctx, h.authUC); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	var orders []model.Order
	if req.Status != "" {
		orders = h.uc.GetOrdersByStatus(ctx, model.OrderStatus(req.Status))
	} else {
		orders = h.uc.GetAllOrders(ctx)
	}
	return mapOrders(orders), nil
}

func (h *OrderHandler) GetPendingOrders(ctx context.Context, _ *emptypb.Empty) (*clinicv1.ListOrdersResponse, error) {
	if _, err := auth.RequireSession(ctx, h.authUC); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return mapOrders(h.uc.GetPendingOrders(ctx)), nil
}

// UpdateOrderStatus enforces the lifecycle: approving and cancelling need
// canApproveOrders, later steps need canModifyInventory.
func (h *OrderHandler) UpdateOrderStatus(ctx context.Context, req *clinicv1.UpdateOrderStatusRequest) (*clinicv1.OrderResponse, error) {
	next := model.OrderStatus(req.Status)
	permission := model.CanModifyInventory
	if next == model.OrderApproved || next == model.OrderCancelled {
		permission = model.CanApproveOrders
	}
	session, err := auth.RequirePermission(ctx, h.authUC, permission)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	o, err := h.uc.TransitionOrderStatus(ctx, req.Id, next, session.User.ID)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.OrderResponse{Order: mapOrder(o)}, nil
}

func (h *OrderHandler) UpdateOrderItemQuantity(ctx context.Context, req *clinicv1.UpdateOrderItemQuantityRequest) (*clinicv1.OrderResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanCreateOrders); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if req.Quantity <= 0 {
		return nil, auth.Status(ctx, codes.InvalidArgument, order.ErrInvalidQuantity)
	}

	o, err := h.uc.EditOrderItemQuantity(ctx, req.OrderId, req.ItemId, int(req.Quantity))
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.OrderResponse{Order: mapOrder(o)}, nil
}

// SubmitOrder fills name, unit, price and expiry of each line from the
// inventory item unless the caller sent them.
func (h *OrderHandler) SubmitOrder(ctx context.Context, req *clinicv1.SubmitOrderRequest) (*clinicv1.OrderResponse, error) {
	session, err := auth.RequirePermission(ctx, h.authUC, model.CanCreateOrders)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if len(req.Items) == 0 {
		return nil, auth.Status(ctx, codes.InvalidArgument, order.ErrNoItems)
	}

	lines := make([]dto.SubmitOrderLine, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Quantity <= 0 {
			return nil, auth.Status(ctx, codes.InvalidArgument, order.ErrInvalidQuantity)
		}
		line, err := h.resolveLine(ctx, in)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	o, err := h.uc.SubmitOrder(ctx, &dto.SubmitOrderInput{
		Items:       lines,
		Notes:       req.Notes,
		Supplier:    req.Supplier,
		CreatedBy:   session.User.Name,
		CreatedByID: session.User.ID,
	})
	if err != nil {
		h.logger.Error("failed to submit order", zap.Error(err))
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.OrderResponse{Order: mapOrder(o)}, nil
}

func (h *OrderHandler) resolveLine(ctx context.Context, in *clinicv1.SubmitOrderLine) (dto.SubmitOrderLine, error) {
	item, err := h.inventoryUC.GetItemByID(ctx, in.ItemId)
	if err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			return dto.SubmitOrderLine{}, auth.Status(ctx, codes.NotFound, err)
		}
		return dto.SubmitOrderLine{}, auth.ToStatus(ctx, err)
	}

	line := dto.SubmitOrderLine{
		ItemID:     item.ID,
		Name:       item.Name,
		Quantity:   int(in.Quantity),
		Unit:       item.Unit,
		Price:      item.Price,
		ExpiryDate: item.ExpiryDate,
	}
	if in.Name != "" {
		line.Name = in.Name
	}
	if in.Unit != "" {
		line.Unit = in.Unit
	}
	if in.Price != "" {
		p, err := decimal.NewFromString(in.Price)
		if err != nil || p.IsNegative() {
			return dto.SubmitOrderLine{}, auth.Status(ctx, codes.InvalidArgument,
				inventory.ErrInvalidPrice.With(map[string]any{"Price": in.Price}))
		}
		line.Price = p
	}
	return line, nil
}

func (h *OrderHandler) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, order.ErrOrderItemNotFound):
		return auth.Status(ctx, codes.NotFound, err)
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrNotEditable):
		return auth.Status(ctx, codes.FailedPrecondition, err)
	}
	return auth.ToStatus(ctx, err)
}

func mapOrders(orders []model.Order) *clinicv1.ListOrdersResponse {
	out := make([]*clinicv1.Order, len(orders))
	for i := range orders {
		out[i] = mapOrder(&orders[i])
	}
	return &clinicv1.ListOrdersResponse{Orders: out}
}

func mapOrder(o *model.Order) *clinicv1.Order {
	items := make([]*clinicv1.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = &clinicv1.OrderItem{
			ItemId:     it.ItemID,
			Name:       it.Name,
			Quantity:   int32(it.Quantity),
			Unit:       it.Unit,
			Price:      it.Price.StringFixed(2),
			ExpiryDate: clinicv1.Timestamp(it.ExpiryDate),
		}
	}
	return &clinicv1.Order{
		Id:           o.ID,
		Status:       string(o.Status),
		CreatedAt:    timestamppb.New(o.CreatedAt),
		CreatedBy:    o.CreatedBy,
		CreatedById:  o.CreatedByID,
		ApprovedBy:   o.ApprovedBy,
		ApprovedById: o.ApprovedByID,
		ApprovedAt:   clinicv1.Timestamp(o.ApprovedAt),
		DeliveryDate: clinicv1.Timestamp(o.DeliveryDate),
		Items:        items,
		Supplier:     o.Supplier,
		Notes:        o.Notes,
		TotalPrice:   o.TotalPrice.StringFixed(2),
	}
}
