package catalog

import (
	"context"

	"icoltex-hub/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes read access to the catalog.
type Service struct {
	clients    *ClientStore
	products   *ProductStore
	categories *TaxonomyStore
	classes    *TaxonomyStore
	logger     *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		clients:    NewClientStore(db),
		products:   NewProductStore(db),
		categories: NewCategoryStore(db),
		classes:    NewClassStore(db),
		logger:     logger,
	}
}

// ListClients returns clients matching the search term, optionally active
// only.
func (s *Service) ListClients(ctx context.Context, query string, activeOnly bool) ([]models.Client, error) {
	return s.clients.List(ctx, query, activeOnly)
}

// GetClient returns one client by document number, or nil when absent.
func (s *Service) GetClient(ctx context.Context, documentNumber string) (*models.Client, error) {
	return s.clients.FindByDocumentNumber(ctx, documentNumber)
}

// ListProducts returns products filtered by search term, taxonomy, and
// active state.
func (s *Service) ListProducts(ctx context.Context, query, category, productClass string, activeOnly bool) ([]models.Product, error) {
	return s.products.List(ctx, query, category, productClass, activeOnly)
}

// GetProduct returns one product by code, or nil when absent.
func (s *Service) GetProduct(ctx context.Context, code string) (*models.Product, error) {
	return s.products.FindByCode(ctx, code)
}

// ListCategories returns taxonomy categories.
func (s *Service) ListCategories(ctx context.Context, activeOnly bool) ([]TaxonomyEntry, error) {
	return s.categories.List(ctx, activeOnly)
}

// ListClasses returns taxonomy classes.
func (s *Service) ListClasses(ctx context.Context, activeOnly bool) ([]TaxonomyEntry, error) {
	return s.classes.List(ctx, activeOnly)
}
