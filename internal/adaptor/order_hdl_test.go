package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
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

func TestGetOrdersHandler(t *testing.T) {
	userID := uuid.New()
	service := &fakeOrderService{
		orders: []response.OrderResponse{
			{
				ID:         uuid.NewString(),
				UserID:     userID.String(),
				Status:     entity.OrderStatusPaid,
				TotalPrice: 42.50,
				CreatedAt:  time.Now(),
			},
		},
	}
	handler := NewOrderHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/store/orders", nil)
	ctx := utils.SetUserContext(req.Context(), userID, string(entity.RoleUser))
	w := httptest.NewRecorder()
	handler.GetOrders(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Code)

	// The listing is scoped to the authenticated user
	require.Len(t, service.calledWith, 1)
	assert.Equal(t, userID, service.calledWith[0])
}

func TestGetOrdersHandlerNoContext(t *testing.T) {
	service := &fakeOrderService{}
	handler := NewOrderHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/store/orders", nil)
	w := httptest.NewRecorder()
	handler.GetOrders(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, service.calledWith)
}

func TestGetOrdersHandlerEmptyList(t *testing.T) {
	service := &fakeOrderService{orders: []response.OrderResponse{}}
	handler := NewOrderHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/store/orders", nil)
	ctx := utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleUser))
	w := httptest.NewRecorder()
	handler.GetOrders(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetOrdersHandlerServiceError(t *testing.T) {
	service := &fakeOrderService{err: fmt.Errorf("get orders: connection refused")}
	handler := NewOrderHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/store/orders", nil)
	ctx := utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleUser))
	w := httptest.NewRecorder()
	handler.GetOrders(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Upstream error text is not echoed to the client
	assert.NotContains(t, w.Body.String(), "connection refused")
}
