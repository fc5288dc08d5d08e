package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderOrdered   OrderStatus = "ordered"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the lifecycle the client offers as actions. The order
// store itself accepts any status; transports enforce this table.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderApproved, OrderCancelled},
	OrderApproved: {OrderOrdered, OrderCancelled},
	OrderOrdered:  {OrderShipped},
	OrderShipped:  {OrderDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderOrdered, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether line quantities may still change.
func (s OrderStatus) Editable() bool {
	return s == OrderPending || s == OrderApproved
}

type OrderItem struct {
	ItemID     string          `json:"itemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	ExpiryDate *time.Time      `json:"expiryDate,omitempty"`
}

type Order struct {
	ID           string          `json:"id"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
	CreatedByID  string          `json:"createdById"`
	ApprovedBy   string          `json:"approvedBy,omitempty"`
	ApprovedByID string          `json:"approvedById,omitempty"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
	DeliveryDate *time.Time      `json:"deliveryDate,omitempty"`
	Items        []OrderItem     `json:"items"`
	Supplier     string          `json:"supplier,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// OrderTotal is Σ price × quantity over all lines.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
