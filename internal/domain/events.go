package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	Type           string      `json:"type"`
	OrderID        string      `json:"order_id"`
	RestaurantID   string      `json:"restaurant_id"`
	Status         OrderStatus `json:"status"`
	PreviousStatus OrderStatus `json:"previous_status,omitempty"`
	Total          float64     `json:"total"`
	Timestamp      time.Time   `json:"timestamp"`
}
