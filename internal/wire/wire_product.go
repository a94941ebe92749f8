package wire

import (
	"storefront/internal/adaptor"
	"storefront/internal/data/repository"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireProduct configures public catalog and admin product management routes
func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /products - active products only
	r.Get("/products", productHandler.GetProducts)

	// GET /product/{id} - active only, inactive reads as 404
	r.Get("/product/{id}", productHandler.GetProductByID)

	// ==================== ADMIN ROUTES ====================
	// Full CRUD with no status filter, admin session required
	r.Route("/api/products", func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, repo.Profile, log))

		r.Get("/", productHandler.GetAllProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{id}", productHandler.GetProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})

	// GET /api/overview - aggregate catalog stats (admin)
	r.With(middleware.AdminSession(repo.Session, repo.Profile, log)).
		Get("/api/overview", productHandler.GetOverview)
}
