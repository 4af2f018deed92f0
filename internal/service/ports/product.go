package ports

import (
	"context"

	"github.com/popupcity/passes/internal/domain"
)

type ProductRepo interface {
	ListByCity(ctx context.Context, cityID int64) ([]domain.Product, error)
}
