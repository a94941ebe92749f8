package usecase

import (
	"storefront/internal/data/repository"
	"storefront/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Order   OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Product: NewProductService(repo, log),
		Order:   NewOrderService(repo.Order, log),
	}
}
