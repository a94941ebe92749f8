package wire

import (
	"storefront/internal/adaptor"
	"storefront/internal/data/repository"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireStore configures the customer-facing storefront routes
func wireStore(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/store/register", handler.Auth.Register)
	r.Post("/store/login", handler.Auth.Login)

	// ==================== PROTECTED ROUTES ====================
	// Everything below requires a valid storefront session cookie
	r.Group(func(r chi.Router) {
		r.Use(middleware.StoreSession(repo.Session, config, log))

		r.Get("/store/me", handler.Auth.Me)
		r.Post("/store/logout", handler.Auth.Logout)

		// GET /store/orders - the caller's own orders only
		r.Get("/store/orders", handler.Order.GetOrders)
	})
}
