package models

import "time"

// Order statuses as reported by the backend. The client renders them and
// never mutates an order.
const (
	OrderPending   = "PENDING"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// ShippingAddress is the full address submitted with a checkout.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID        string  `json:"id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Product   Product `json:"product"`
}

// Order is a server-owned record of a completed checkout.
type Order struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"total_amount"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}
