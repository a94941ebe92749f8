package adaptor

import (
	"context"
	"encoding/json"
	"testing"

	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fake services for the handler tests. Each method returns a canned
// result or error set on the struct.

type fakeAuthService struct {
	registerResp *response.RegisterResponse
	registerErr  error
	loginResp    *response.AuthResponse
	loginErr     error
	meResp       *response.MeResponse
	meErr        error
	logoutErr    error

	logoutTokens []string
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest, meta usecase.SessionMeta) (*response.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) AdminLogin(ctx context.Context, req *request.LoginRequest, meta usecase.SessionMeta) (*response.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.logoutTokens = append(f.logoutTokens, token)
	return f.logoutErr
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*response.MeResponse, error) {
	return f.meResp, f.meErr
}

type fakeProductService struct {
	listResp     []response.ProductResponse
	listErr      error
	productResp  *response.ProductResponse
	productErr   error
	overviewResp *response.OverviewResponse
	overviewErr  error
	deleteErr    error

	deletedIDs []string
}

func (f *fakeProductService) GetActiveProducts(ctx context.Context) ([]response.ProductResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeProductService) GetActiveProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	return f.productResp, f.productErr
}

func (f *fakeProductService) GetAllProducts(ctx context.Context) ([]response.ProductResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeProductService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	return f.productResp, f.productErr
}

func (f *fakeProductService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	return f.productResp, f.productErr
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	return f.productResp, f.productErr
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, productID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, productID)
	return nil
}

func (f *fakeProductService) GetOverview(ctx context.Context) (*response.OverviewResponse, error) {
	return f.overviewResp, f.overviewErr
}

type fakeOrderService struct {
	orders []response.OrderResponse
	err    error

	calledWith []uuid.UUID
}

func (f *fakeOrderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	f.calledWith = append(f.calledWith, userID)
	return f.orders, f.err
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{TTLHours: 24, CookieSecure: false},
	}
}

func decodeEnvelope(t *testing.T, body []byte) utils.Response {
	t.Helper()

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}
