package ports

import (
	"context"
	"time"

	"github.com/popupcity/passes/internal/domain"
)

type CartRepo interface {
	GetByApplication(ctx context.Context, applicationID, cityID int64) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	MarkPending(ctx context.Context, cartID string, at time.Time) error
	Clear(ctx context.Context, cartID string) error
	ReleaseStalePending(ctx context.Context, before time.Time) (int64, error)
}
