package service

import (
	"context"
	"fmt"

	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/service/ports"
)

type CatalogService struct {
	productRepo ports.ProductRepo
}

func NewCatalogService(productRepo ports.ProductRepo) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ListProducts returns the purchasable catalog for a city.
func (s *CatalogService) ListProducts(ctx context.Context, cityID int64) ([]domain.Product, error) {
	products, err := s.productRepo.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return activeOnly(products), nil
}
