package service

import (
	"context"
	"testing"

	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts_FiltersInactive(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewCatalogService(productRepo)

	inactive := weekProduct(3, 80)
	inactive.IsActive = false
	productRepo.EXPECT().ListByCity(mock.Anything, int64(1)).
		Return([]domain.Product{weekProduct(2, 100), inactive}, nil)

	products, err := svc.ListProducts(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].ID)
}

func TestCatalogService_ListProducts_RepoError(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewCatalogService(productRepo)

	productRepo.EXPECT().ListByCity(mock.Anything, int64(1)).Return(nil, assert.AnError)

	_, err := svc.ListProducts(context.Background(), 1)

	require.Error(t, err)
}
