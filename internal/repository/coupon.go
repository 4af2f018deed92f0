package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/popupcity/passes/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CouponRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCouponRepo(db *dbpg.DB) *CouponRepository {
	return &CouponRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CouponRepository) GetByCode(ctx context.Context, cityID int64, code string) (*domain.Coupon, error) {
	query := `SELECT id, city_id, code, discount_value, message, is_active
	          FROM coupon_codes
	          WHERE city_id = $1 AND code = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, cityID, code)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	var (
		c       domain.Coupon
		message sql.NullString
	)
	if err := row.Scan(&c.ID, &c.CityID, &c.Code, &c.DiscountValue, &message, &c.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("scan coupon: %w", err)
	}
	c.Message = message.String

	return &c, nil
}
