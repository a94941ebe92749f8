package utils

import (
	"net/http"
	"time"
)

// Cookie names for the two session namespaces. The storefront and admin
// panel keep independent sessions so an admin can stay logged into both.
const (
	StoreCookieName = "sf-token"
	AdminCookieName = "token"
)

// SetSessionCookie writes an HTTP-only session cookie whose MaxAge is
// derived from the session's expiry.
func SetSessionCookie(w http.ResponseWriter, name, token string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires a session cookie immediately
func ClearSessionCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
