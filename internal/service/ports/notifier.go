package ports

import (
	"context"

	"github.com/popupcity/passes/internal/domain"
)

type PurchaseNotifier interface {
	NotifyPurchaseConfirmed(ctx context.Context, app *domain.Application, amount float64)
}
