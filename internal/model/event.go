package model

import "time"

type OrderEventType string

const (
	EventOrderSubmitted     OrderEventType = "OrderSubmitted"
	EventOrderStatusChanged OrderEventType = "OrderStatusChanged"
	EventOrderDelivered     OrderEventType = "OrderDelivered"
)

// OrderEvent is published on the orders topic whenever an order is
// submitted or changes status.
type OrderEvent struct {
	EventID        string         `json:"event_id"`
	EventType      OrderEventType `json:"event_type"`
	PreviousStatus OrderStatus    `json:"previous_status,omitempty"`
	Payload        Order          `json:"payload"`
	UserID         string         `json:"user_id,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}
