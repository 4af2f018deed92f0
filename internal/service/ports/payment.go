package ports

import (
	"context"

	"github.com/popupcity/passes/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Approve(ctx context.Context, id, externalID string) error
	ListPurchasedItems(ctx context.Context, applicationID int64) ([]domain.CartItem, error)
}
