package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	GetActiveProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetActiveProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	GetAllProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetOverview(ctx context.Context) (*response.OverviewResponse, error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

// GetActiveProducts lists the public catalog, active products only
func (s *productService) GetActiveProducts(ctx context.Context) ([]response.ProductResponse, error) {
	status := entity.ProductStatusActive
	products, err := s.repo.Product.FindAll(ctx, &status)
	if err != nil {
		s.log.Error("Failed to get active products", zap.Error(err))
		return nil, fmt.Errorf("get products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

// GetActiveProductByID fetches one public product. An id that exists but
// is inactive resolves to not found, indistinguishable from a missing id.
func (s *productService) GetActiveProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		s.log.Warn("Invalid product ID format", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	status := entity.ProductStatusActive
	product, err := s.repo.Product.FindByID(ctx, id, &status)
	if err != nil {
		s.log.Error("Failed to get product by ID", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// GetAllProducts lists the catalog regardless of status (admin view)
func (s *productService) GetAllProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx, nil)
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("get products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id, nil)
	if err != nil {
		s.log.Error("Failed to get product by ID", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      entity.ProductStatus(req.Status),
		Images:      req.Images,
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}

	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// UpdateProduct applies a partial update, only provided fields replace
// existing values, and sets updated_at server-side.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, id, nil)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Status != nil {
		product.Status = entity.ProductStatus(*req.Status)
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	now := time.Now()
	product.UpdatedAt = &now

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated",
		zap.String("product_id", productID),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return err
	}

	return nil
}

// GetOverview aggregates catalog stats for the admin dashboard. This is
// the only computation done over rows rather than passed through.
func (s *productService) GetOverview(ctx context.Context) (*response.OverviewResponse, error) {
	products, err := s.repo.Product.FindAll(ctx, nil)
	if err != nil {
		s.log.Error("Failed to get products for overview", zap.Error(err))
		return nil, fmt.Errorf("get overview: %w", err)
	}

	overview := &response.OverviewResponse{
		TotalProducts: len(products),
	}

	for _, product := range products {
		if product.Status == entity.ProductStatusActive {
			overview.ActiveProducts++
		}
		overview.TotalImages += len(product.Images)

		// Prefer updated_at, fall back to created_at
		changed := product.CreatedAt
		if product.UpdatedAt != nil {
			changed = *product.UpdatedAt
		}
		if overview.LastUpdated == nil || changed.After(*overview.LastUpdated) {
			t := changed
			overview.LastUpdated = &t
		}
	}

	return overview, nil
}
