package models

import "time"

// Order statuses. Status advances monotonically; advancement is driven by an
// external fulfillment process.
const (
	OrderStatusOrdered        = "ordered"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
)

// OrderLine snapshots (order, product, qty) at purchase time. It is never
// mutated afterwards, independent of later stock or price changes.
type OrderLine struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"uniqueIndex:idx_line_order_product;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_line_order_product;type:varchar(36)"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is an immutable order header owned by one user.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Status    string      `json:"status" gorm:"type:varchar(20)"`
	Lines     []OrderLine `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// LineRequest is a single (product, qty) item of a placeOrder request.
type LineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"required"`
}
