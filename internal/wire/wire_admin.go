package wire

import (
	"storefront/internal/adaptor"
	"storefront/internal/data/repository"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures the admin panel auth routes. The admin session
// lives in its own cookie namespace, independent of the storefront one.
func wireAdmin(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /login - role-gated, a non-admin gets 403 and no cookie
	r.Post("/login", authHandler.AdminLogin)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AdminSession(repo.Session, repo.Profile, log)).
		Post("/logout", authHandler.AdminLogout)
}
