package dto

import (
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/shopspring/decimal"
)

// ItemInput holds the editable fields of an inventory item.
type ItemInput struct {
	Name               string
	Category           string
	Description        string
	Location           string
	CurrentStock       int
	MinStock           int
	Unit               string
	Price              decimal.Decimal
	ExpiryDate         *time.Time
	Supplier           string
	Manufacturer       string
	ManufacturerNumber string
	Barcode            string
	Image              string
	Batch              string
	SKU                string
	UpdatedBy          string
}

// UpdateStockInput sets the stock of an item to an absolute level.
type UpdateStockInput struct {
	ItemID   string
	NewStock int
	Type     model.TransactionType
	UserID   string
	UserName string
	Notes    string
}

// AdjustStockInput changes the stock of an item by Delta, computed against
// the level at the time of the change.
type AdjustStockInput struct {
	ItemID   string
	Delta    int
	Type     model.TransactionType
	UserID   string
	UserName string
	Notes    string
}
