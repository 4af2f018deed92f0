package ports

import (
	"context"

	"github.com/popupcity/passes/internal/domain"
)

type ApplicationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
}
