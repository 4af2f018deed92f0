package ports

import (
	"context"

	"github.com/popupcity/passes/internal/domain"
)

type CouponRepo interface {
	GetByCode(ctx context.Context, cityID int64, code string) (*domain.Coupon, error)
}
