package service

import (
	"context"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/danilo1273/confeitaria/backend-go/internal/repository"
)

// CatalogService is a thin read surface over the tenant catalog.
type CatalogService struct {
	catalog repository.CatalogRepository
	stock   repository.StockRepository
}

func NewCatalogService(catalog repository.CatalogRepository, stock repository.StockRepository) *CatalogService {
	return &CatalogService{catalog: catalog, stock: stock}
}

func (s *CatalogService) Ingredients(ctx context.Context, tenantID int64) ([]domain.Ingredient, error) {
	return s.catalog.GetIngredients(ctx, tenantID)
}

func (s *CatalogService) Products(ctx context.Context, tenantID int64) ([]domain.Product, error) {
	return s.catalog.GetProducts(ctx, tenantID)
}

func (s *CatalogService) Locations(ctx context.Context, tenantID int64) ([]domain.StockLocation, error) {
	return s.stock.GetLocations(ctx, tenantID)
}
