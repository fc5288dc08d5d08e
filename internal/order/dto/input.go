package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitOrderLine struct {
	ItemID     string
	Name       string
	Quantity   int
	Unit       string
	Price      decimal.Decimal
	ExpiryDate *time.Time
}

type SubmitOrderInput struct {
	Items       []SubmitOrderLine
	Notes       string
	Supplier    string
	CreatedBy   string
	CreatedByID string
}
