package response

import (
	"time"

	"storefront/internal/data/entity"
)

type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Status      entity.ProductStatus `json:"status"`
	Images      []string             `json:"images"`
	Price       float64              `json:"price"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   *time.Time           `json:"updated_at,omitempty"`
}

// OverviewResponse is the admin dashboard aggregate
type OverviewResponse struct {
	TotalProducts  int        `json:"totalProducts"`
	ActiveProducts int        `json:"activeProducts"`
	TotalImages    int        `json:"totalImages"`
	LastUpdated    *time.Time `json:"lastUpdated"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Status:      product.Status,
		Images:      images,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ProductToResponse(product)
	}
	return responses
}
