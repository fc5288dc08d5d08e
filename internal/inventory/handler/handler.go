package handler

import (
	"context"
	"errors"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/internal/auth"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const defaultExpiryDays = 30

type InventoryHandler struct {
	clinicv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	authUC auth.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, authUC auth.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		authUC: authUC,
		logger: log,
	}
}

func (h *InventoryHandler) GetItem(ctx context.Context, req *clinicv1.GetItemRequest) (*clinicv1.ItemResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	item, err := h.uc.GetItemByID(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.ItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) GetItemByBarcode(ctx context.Context, req *clinicv1.GetItemByBarcodeRequest) (*clinicv1.ItemResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	item, err := h.uc.GetItemByBarcode(ctx, req.Barcode)
	if err != nil {
		h.logger.Debug("barcode not found", zap.String("barcode", req.Barcode))
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.ItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) ListItems(ctx context.Context, req *clinicv1.ListItemsRequest) (*clinicv1.ListItemsResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	var items []model.InventoryItem
	if req.Category != "" {
		items = h.uc.GetItemsByCategory(ctx, req.Category)
	} else {
		items = h.uc.ListItems(ctx)
	}
	return mapItems(items), nil
}

func (h *InventoryHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*clinicv1.ListCategoriesResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return &clinicv1.ListCategoriesResponse{Categories: h.uc.ListCategories(ctx)}, nil
}

func (h *InventoryHandler) SearchItems(ctx context.Context, req *clinicv1.SearchItemsRequest) (*clinicv1.ListItemsResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	items, err := h.uc.SearchItems(ctx, req.Query, int(req.Limit))
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return mapItems(items), nil
}

func (h *InventoryHandler) CreateItem(ctx context.Context, req *clinicv1.CreateItemRequest) (*clinicv1.ItemResponse, error) {
	session, err := auth.RequirePermission(ctx, h.authUC, model.CanModifyInventory)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	input, err := toItemInput(req.Item, session.User.Name)
	if err != nil {
		return nil, auth.Status(ctx, codes.InvalidArgument, err)
	}
	item, err := h.uc.CreateItem(ctx, input)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.ItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) UpdateItem(ctx context.Context, req *clinicv1.UpdateItemRequest) (*clinicv1.ItemResponse, error) {
	session, err := auth.RequirePermission(ctx, h.authUC, model.CanModifyInventory)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	input, err := toItemInput(req.Item, session.User.Name)
	if err != nil {
		return nil, auth.Status(ctx, codes.InvalidArgument, err)
	}
	item, err := h.uc.UpdateItem(ctx, req.Id, input)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &clinicv1.ItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) DeleteItem(ctx context.Context, req *clinicv1.DeleteItemRequest) (*emptypb.Empty, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanModifyInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if err := h.uc.DeleteItem(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *InventoryHandler) UpdateStock(ctx context.Context, req *clinicv1.UpdateStockRequest) (*clinicv1.UpdateStockResponse, error) {
	session, err := auth.RequirePermission(ctx, h.authUC, model.CanModifyInventory)
	if err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	txType := model.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, auth.Status(ctx, codes.InvalidArgument, inventory.ErrInvalidTransactionType.With(map[string]any{"Type": req.Type}))
	}
	if req.NewStock < 0 {
		return nil, auth.Status(ctx, codes.InvalidArgument, inventory.ErrInvalidStock)
	}

	change, err := h.uc.UpdateItemStock(ctx, &dto.UpdateStockInput{
		ItemID:   req.ItemId,
		NewStock: int(req.NewStock),
		Type:     txType,
		UserID:   session.User.ID,
		UserName: session.User.Name,
		Notes:    req.Notes,
	})
	if err != nil {
		h.logger.Error("failed to update stock", zap.String("item_id", req.ItemId), zap.Error(err))
		return nil, h.toStatus(ctx, err)
	}

	return &clinicv1.UpdateStockResponse{
		Item:        mapItem(&change.Item),
		Transaction: mapTransaction(&change.Transaction),
	}, nil
}

func (h *InventoryHandler) GetLowStockItems(ctx context.Context, _ *emptypb.Empty) (*clinicv1.ListItemsResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	return mapItems(h.uc.GetLowStockItems(ctx)), nil
}

func (h *InventoryHandler) GetExpiringItems(ctx context.Context, req *clinicv1.GetExpiringItemsRequest) (*clinicv1.ListItemsResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	days := int(req.Days)
	if days <= 0 {
		days = defaultExpiryDays
	}
	return mapItems(h.uc.GetExpiringItems(ctx, days)), nil
}

func (h *InventoryHandler) GetRecentTransactions(ctx context.Context, req *clinicv1.GetRecentTransactionsRequest) (*clinicv1.ListTransactionsResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	txs := h.uc.GetRecentTransactions(ctx, int(req.Limit))
	out := make([]*clinicv1.StockTransaction, len(txs))
	for i := range txs {
		out[i] = mapTransaction(&txs[i])
	}
	return &clinicv1.ListTransactionsResponse{Transactions: out}, nil
}

func (h *InventoryHandler) ListAlerts(ctx context.Context, _ *emptypb.Empty) (*clinicv1.ListAlertsResponse, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}

	alerts := h.uc.ListAlerts(ctx)
	out := make([]*clinicv1.StockAlert, len(alerts))
	for i, a := range alerts {
		out[i] = &clinicv1.StockAlert{
			Id:        a.ID,
			Type:      string(a.Type),
			ItemId:    a.ItemID,
			ItemName:  a.ItemName,
			OrderId:   a.OrderID,
			Message:   a.Message,
			CreatedAt: timestamppb.New(a.CreatedAt),
			IsRead:    a.IsRead,
			Priority:  string(a.Priority),
		}
	}
	return &clinicv1.ListAlertsResponse{
		Alerts:      out,
		UnreadCount: int32(h.uc.GetUnreadAlertsCount(ctx)),
	}, nil
}

func (h *InventoryHandler) MarkAlertAsRead(ctx context.Context, req *clinicv1.MarkAlertAsReadRequest) (*emptypb.Empty, error) {
	if _, err := auth.RequirePermission(ctx, h.authUC, model.CanViewInventory); err != nil {
		return nil, auth.ToStatus(ctx, err)
	}
	if err := h.uc.MarkAlertAsRead(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *InventoryHandler) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound), errors.Is(err, inventory.ErrAlertNotFound):
		return auth.Status(ctx, codes.NotFound, err)
	case errors.Is(err, inventory.ErrBarcodeExists):
		return auth.Status(ctx, codes.AlreadyExists, err)
	case errors.Is(err, inventory.ErrBusy):
		return auth.Status(ctx, codes.Unavailable, err)
	}
	return auth.ToStatus(ctx, err)
}

func toItemInput(req *clinicv1.ItemInput, updatedBy string) (*dto.ItemInput, error) {
	if req == nil {
		req = &clinicv1.ItemInput{}
	}
	price := decimal.Zero
	if req.Price != "" {
		p, err := decimal.NewFromString(req.Price)
		if err != nil || p.IsNegative() {
			return nil, inventory.ErrInvalidPrice.With(map[string]any{"Price": req.Price})
		}
		price = p
	}
	if req.CurrentStock < 0 || req.MinStock < 0 {
		return nil, inventory.ErrInvalidStock
	}

	return &dto.ItemInput{
		Name:               req.Name,
		Category:           req.Category,
		Description:        req.Description,
		Location:           req.Location,
		CurrentStock:       int(req.CurrentStock),
		MinStock:           int(req.MinStock),
		Unit:               req.Unit,
		Price:              price,
		ExpiryDate:         clinicv1.Time(req.ExpiryDate),
		Supplier:           req.Supplier,
		Manufacturer:       req.Manufacturer,
		ManufacturerNumber: req.ManufacturerNumber,
		Barcode:            req.Barcode,
		Image:              req.Image,
		Batch:              req.Batch,
		SKU:                req.Sku,
		UpdatedBy:          updatedBy,
	}, nil
}

func mapItems(items []model.InventoryItem) *clinicv1.ListItemsResponse {
	out := make([]*clinicv1.InventoryItem, len(items))
	for i := range items {
		out[i] = mapItem(&items[i])
	}
	return &clinicv1.ListItemsResponse{Items: out, Total: int32(len(out))}
}

func mapItem(it *model.InventoryItem) *clinicv1.InventoryItem {
	return &clinicv1.InventoryItem{
		Id:                 it.ID,
		Name:               it.Name,
		Category:           it.Category,
		Description:        it.Description,
		Location:           it.Location,
		CurrentStock:       int32(it.CurrentStock),
		MinStock:           int32(it.MinStock),
		Unit:               it.Unit,
		Price:              it.Price.StringFixed(2),
		ExpiryDate:         clinicv1.Timestamp(it.ExpiryDate),
		Supplier:           it.Supplier,
		Manufacturer:       it.Manufacturer,
		ManufacturerNumber: it.ManufacturerNumber,
		LastUpdated:        timestamppb.New(it.LastUpdated),
		UpdatedBy:          it.UpdatedBy,
		Barcode:            it.Barcode,
		Image:              it.Image,
		Batch:              it.Batch,
		Sku:                it.SKU,
		IsLowStock:         it.IsLowStock(),
	}
}

func mapTransaction(tx *model.StockTransaction) *clinicv1.StockTransaction {
	return &clinicv1.StockTransaction{
		Id:        tx.ID,
		ItemId:    tx.ItemID,
		ItemName:  tx.ItemName,
		Type:      string(tx.Type),
		Quantity:  int32(tx.Quantity),
		Timestamp: timestamppb.New(tx.Timestamp),
		UserId:    tx.UserID,
		UserName:  tx.UserName,
		Notes:     tx.Notes,
	}
}
