package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID          uuid.UUID     `db:"id"`
	Name        string        `db:"name"`
	Description *string       `db:"description"`
	Status      ProductStatus `db:"status"`
	Images      []string      `db:"images"`
	Price       float64       `db:"price"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   *time.Time    `db:"updated_at"`
}
