package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order rows are read-only through this API; they are written by the
// checkout flow outside this service.
type Order struct {
	BaseSimple
	UserID     uuid.UUID   `db:"user_id"`
	Status     OrderStatus `db:"status"`
	TotalPrice float64     `db:"total_price"`
}
