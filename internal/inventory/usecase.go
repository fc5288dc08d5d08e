package inventory

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
)

var (
	ErrItemNotFound  = i18n.NewError("inventory.item_not_found")
	ErrBarcodeExists = i18n.NewError("inventory.barcode_exists")
	ErrNameRequired  = i18n.NewError("inventory.name_required")
	ErrAlertNotFound = i18n.NewError("inventory.alert_not_found")
	ErrBusy          = i18n.NewError("inventory.busy")

	ErrInvalidPrice           = i18n.NewError("inventory.invalid_price")
	ErrInvalidStock           = i18n.NewError("inventory.invalid_stock")
	ErrInvalidTransactionType = i18n.NewError("inventory.invalid_transaction_type")
)

// DefaultTransactionLimit is used by GetRecentTransactions when no limit
// is given.
const DefaultTransactionLimit = 10

type UseCase interface {
	state.Saveable
	Load(ctx context.Context) error

	GetItemByID(ctx context.Context, id string) (*model.InventoryItem, error)
	GetItemByBarcode(ctx context.Context, barcode string) (*model.InventoryItem, error)
	ListItems(ctx context.Context) []model.InventoryItem
	GetItemsByCategory(ctx context.Context, category string) []model.InventoryItem
	ListCategories(ctx context.Context) []string
	SearchItems(ctx context.Context, query string, limit int) ([]model.InventoryItem, error)

	CreateItem(ctx context.Context, input *dto.ItemInput) (*model.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, input *dto.ItemInput) (*model.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error

	UpdateItemStock(ctx context.Context, input *dto.UpdateStockInput) (*dto.StockChange, error)
	AdjustItemStock(ctx context.Context, input *dto.AdjustStockInput) (*dto.StockChange, error)

	GetLowStockItems(ctx context.Context) []model.InventoryItem
	GetExpiringItems(ctx context.Context, days int) []model.InventoryItem
	GetRecentTransactions(ctx context.Context, limit int) []model.StockTransaction

	ListAlerts(ctx context.Context) []model.StockAlert
	MarkAlertAsRead(ctx context.Context, id string) error
	GetUnreadAlertsCount(ctx context.Context) int
}

// Locker serializes stock changes across service instances.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}
