package domain

import "time"

// OrderStatusConfirmed is the only status an order can have: orders exist
// transiently for the confirmation view and are never persisted.
const OrderStatusConfirmed = "Confirmed"

// Order is the record synthesized by a successful checkout.
type Order struct {
	ID           string     `json:"order_id"`
	CustomerName string     `json:"customer_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Items        []CartLine `json:"items"`
	Total        float64    `json:"total"`
	CreatedAt    time.Time  `json:"order_date"`
	Status       string     `json:"status"`
}
