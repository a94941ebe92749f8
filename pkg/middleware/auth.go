package middleware

import (
	"net/http"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreSession validates the storefront session cookie. An invalid or
// expired token clears the cookie so the browser is logged out in the
// same response.
func StoreSession(sessionRepo repository.SessionRepository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.StoreCookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "No active session")
				return
			}

			session := resolveSession(r, sessionRepo, cookie.Value, logger)
			if session == nil {
				utils.ClearSessionCookie(w, utils.StoreCookieName, config.Session.CookieSecure)
				utils.ResponseUnauthorized(w, "Invalid session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, string(entity.RoleUser))
			ctx = utils.SetTokenContext(ctx, cookie.Value)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminSession validates the admin session cookie and requires an admin
// profile. Unlike StoreSession it never clears the cookie on failure.
func AdminSession(sessionRepo repository.SessionRepository, profileRepo repository.ProfileRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.AdminCookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "No active session")
				return
			}

			session := resolveSession(r, sessionRepo, cookie.Value, logger)
			if session == nil {
				utils.ResponseUnauthorized(w, "Invalid session")
				return
			}

			profile, err := profileRepo.FindByUserID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Admin check: failed to get profile",
					zap.Error(err), zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if profile == nil || profile.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", session.UserID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, string(entity.RoleAdmin))
			ctx = utils.SetTokenContext(ctx, cookie.Value)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveSession maps every resolution failure to "no session". Lookup
// errors are logged but still read as an invalid token by callers.
func resolveSession(r *http.Request, sessionRepo repository.SessionRepository, token string, logger *zap.Logger) *entity.Session {
	if _, err := uuid.Parse(token); err != nil {
		logger.Warn("Malformed session token", zap.String("path", r.URL.Path))
		return nil
	}

	session, err := sessionRepo.FindValidSession(r.Context(), token)
	if err != nil {
		logger.Error("Failed to validate session", zap.Error(err))
		return nil
	}
	if session == nil {
		logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
		return nil
	}

	return session
}
