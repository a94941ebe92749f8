package response

import (
	"time"

	"storefront/internal/data/entity"
)

type OrderResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	Status     entity.OrderStatus `json:"status"`
	TotalPrice float64            `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID.String(),
		UserID:     order.UserID.String(),
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order)
	}
	return responses
}
