package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRegisterHandler(t *testing.T) {
	service := &fakeAuthService{
		registerResp: &response.RegisterResponse{
			UserID:    uuid.NewString(),
			Email:     "jane@example.com",
			CreatedAt: time.Now(),
		},
	}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	body := `{"name":"Jane Doe","email":"jane@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/store/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, envelope.Status)

	// Registration does not log in
	assert.Empty(t, w.Result().Cookies())
}

func TestRegisterHandlerInvalidBody(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, testConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/store/register", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandlerValidation(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, testConfig(), zap.NewNop())

	body := `{"name":"Jane Doe","email":"not-an-email","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/store/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w.Body.Bytes())
	assert.False(t, envelope.Status)
	assert.NotNil(t, envelope.Errors)
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	service := &fakeAuthService{registerErr: fmt.Errorf("email already registered")}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	body := `{"name":"Jane Doe","email":"jane@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/store/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandlerSetsCookie(t *testing.T) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(24 * time.Hour)
	service := &fakeAuthService{
		loginResp: &response.AuthResponse{
			UserID:    uuid.NewString(),
			Email:     "jane@example.com",
			Role:      entity.RoleUser,
			Token:     token,
			ExpiresAt: expiresAt,
		},
	}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	body := `{"email":"jane@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/store/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findCookie(t, w, utils.StoreCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The raw token never appears in the body
	assert.NotContains(t, w.Body.String(), token)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	service := &fakeAuthService{loginErr: fmt.Errorf("invalid credentials")}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	body := `{"email":"jane@example.com","password":"wrongpass"}`
	req := httptest.NewRequest(http.MethodPost, "/store/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminLoginHandlerSetsAdminCookie(t *testing.T) {
	token := uuid.NewString()
	service := &fakeAuthService{
		loginResp: &response.AuthResponse{
			UserID:    uuid.NewString(),
			Email:     "admin@example.com",
			Role:      entity.RoleAdmin,
			Token:     token,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		},
	}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	body := `{"email":"admin@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.AdminLogin(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findCookie(t, w, utils.AdminCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
}

func TestAdminLoginHandlerNonAdmin(t *testing.T) {
	service := &fakeAuthService{loginErr: fmt.Errorf("admin access required")}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	body := `{"email":"jane@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.AdminLogin(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestMeHandler(t *testing.T) {
	userID := uuid.New()
	service := &fakeAuthService{
		meResp: &response.MeResponse{
			ID:    userID.String(),
			Email: "jane@example.com",
			Profile: response.ProfileResponse{
				Name: "Jane Doe",
				Role: entity.RoleUser,
			},
		},
	}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/store/me", nil)
	ctx := utils.SetUserContext(req.Context(), userID, string(entity.RoleUser))
	w := httptest.NewRecorder()
	handler.Me(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Code)
	// The payload nests the merged identity under "user"
	assert.Contains(t, w.Body.String(), `"user"`)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestMeHandlerNoContext(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, testConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/store/me", nil)
	w := httptest.NewRecorder()
	handler.Me(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutHandler(t *testing.T) {
	service := &fakeAuthService{}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	token := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/store/logout", nil)
	ctx := utils.SetTokenContext(req.Context(), token)
	w := httptest.NewRecorder()
	handler.Logout(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{token}, service.logoutTokens)

	cookie := findCookie(t, w, utils.StoreCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogoutHandlerRevokeFailureStillClears(t *testing.T) {
	service := &fakeAuthService{logoutErr: fmt.Errorf("session not found or already revoked")}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/store/logout", nil)
	ctx := utils.SetTokenContext(req.Context(), uuid.NewString())
	w := httptest.NewRecorder()
	handler.Logout(w, req.WithContext(ctx))

	// Revoke failures are not surfaced, the browser is logged out anyway
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findCookie(t, w, utils.StoreCookieName)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestAdminLogoutHandlerClearsAdminCookie(t *testing.T) {
	service := &fakeAuthService{}
	handler := NewAuthHandler(service, testConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	ctx := utils.SetTokenContext(req.Context(), uuid.NewString())
	w := httptest.NewRecorder()
	handler.AdminLogout(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findCookie(t, w, utils.AdminCookieName)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}
