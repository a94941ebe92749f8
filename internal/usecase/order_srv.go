package usecase

import (
	"context"
	"fmt"

	"storefront/internal/data/repository"
	"storefront/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		log:       log.With(zap.String("service", "order")),
	}
}

// GetUserOrders returns the caller's own orders, newest first. No orders
// is an empty list, not an error.
func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}
