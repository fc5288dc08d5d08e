package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	CurrentStock       int             `json:"currentStock"`
	MinStock           int             `json:"minStock"`
	Unit               string          `json:"unit"`
	Price              decimal.Decimal `json:"price"`
	ExpiryDate         *time.Time      `json:"expiryDate,omitempty"`
	Supplier           string          `json:"supplier,omitempty"`
	Manufacturer       string          `json:"manufacturer,omitempty"`
	ManufacturerNumber string          `json:"manufacturerNumber,omitempty"`
	LastUpdated        time.Time       `json:"lastUpdated"`
	UpdatedBy          string          `json:"updatedBy"`
	Barcode            string          `json:"barcode,omitempty"`
	Image              string          `json:"image,omitempty"`
	Batch              string          `json:"batch,omitempty"`
	SKU                string          `json:"sku,omitempty"`
}

func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock < i.MinStock
}

// ExpiresBefore reports whether the item has an expiry date at or before t.
// Items without an expiry date never expire.
func (i *InventoryItem) ExpiresBefore(t time.Time) bool {
	return i.ExpiryDate != nil && !i.ExpiryDate.After(t)
}

type TransactionType string

const (
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionRestock    TransactionType = "restock"
	TransactionReturn     TransactionType = "return"
	TransactionAdjustment TransactionType = "adjustment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionWithdrawal, TransactionRestock, TransactionReturn, TransactionAdjustment:
		return true
	}
	return false
}

// StockTransaction is written once per stock change and never modified.
// Quantity is the magnitude of the change.
type StockTransaction struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Type      TransactionType `json:"type"`
	Quantity  int             `json:"quantity"`
	Timestamp time.Time       `json:"timestamp"`
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	Notes     string          `json:"notes,omitempty"`
}

type AlertType string

const (
	AlertLowStock     AlertType = "low_stock"
	AlertExpiringSoon AlertType = "expiring_soon"
	AlertOrderStatus  AlertType = "order_status"
	AlertSystem       AlertType = "system"
)

type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityMedium AlertPriority = "medium"
	PriorityHigh   AlertPriority = "high"
)

type StockAlert struct {
	ID        string        `json:"id"`
	Type      AlertType     `json:"type"`
	ItemID    string        `json:"itemId,omitempty"`
	ItemName  string        `json:"itemName,omitempty"`
	OrderID   string        `json:"orderId,omitempty"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"createdAt"`
	IsRead    bool          `json:"isRead"`
	Priority  AlertPriority `json:"priority"`
}

// NormalizeBarcode keeps only the digits, so "4006-3813-33931" and
// "4006381333931" compare equal.
func NormalizeBarcode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
