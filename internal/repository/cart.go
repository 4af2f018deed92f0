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

type CartRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCartRepo(db *dbpg.DB) *CartRepository {
	return &CartRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CartRepository) GetByApplication(ctx context.Context, applicationID, cityID int64) (*domain.Cart, error) {
	query := `SELECT id, application_id, city_id, discount_value, discount_type, discount_code, pending_since, created_at, updated_at
	          FROM carts
	          WHERE application_id = $1 AND city_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, applicationID, cityID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var (
		c            domain.Cart
		discountType sql.NullString
		discountCode sql.NullString
		pendingSince sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.ApplicationID, &c.CityID, &c.Discount.Value, &discountType, &discountCode, &pendingSince, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("scan cart: %w", err)
	}
	if discountType.Valid {
		c.Discount.Type = domain.DiscountType(discountType.String)
	}
	c.Discount.Code = discountCode.String
	if !c.Discount.IsZero() {
		c.Discount.CityID = cityID
	}
	if pendingSince.Valid {
		c.PendingSince = &pendingSince.Time
	}

	items, err := r.listItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items

	return &c, nil
}

func (r *CartRepository) listItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	query := `SELECT attendee_id, product_id, quantity, custom_amount
	          FROM cart_items
	          WHERE cart_id = $1
	          ORDER BY attendee_id, product_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	return scanCartItems(rows)
}

// Save upserts the cart snapshot: one cart per (application, city),
// items replaced wholesale.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO carts (id, application_id, city_id, discount_value, discount_type, discount_code, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (application_id, city_id) DO UPDATE
	          SET discount_value = EXCLUDED.discount_value,
	              discount_type  = EXCLUDED.discount_type,
	              discount_code  = EXCLUDED.discount_code,
	              updated_at     = EXCLUDED.updated_at
	          RETURNING id`
	if err := tx.QueryRowContext(
		ctx, query, cart.ID, cart.ApplicationID, cart.CityID,
		cart.Discount.Value, nullString(string(cart.Discount.Type)), nullString(cart.Discount.Code),
		cart.CreatedAt, cart.UpdatedAt,
	).Scan(&cart.ID); err != nil {
		return fmt.Errorf("upsert cart: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}

	itemQuery := `INSERT INTO cart_items (cart_id, attendee_id, product_id, quantity, custom_amount)
	              VALUES ($1, $2, $3, $4, $5)`
	for _, it := range cart.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, cart.ID, it.AttendeeID, it.ProductID, it.Quantity, nullFloat(it.CustomAmount)); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *CartRepository) MarkPending(ctx context.Context, cartID string, at time.Time) error {
	query := `UPDATE carts SET pending_since = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.Master.ExecContext(ctx, query, cartID, at)
	if err != nil {
		return fmt.Errorf("mark cart pending: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cart rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCartNotFound
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, cartID string) error {
	if _, err := r.db.Master.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *CartRepository) ReleaseStalePending(ctx context.Context, before time.Time) (int64, error) {
	query := `UPDATE carts SET pending_since = NULL, updated_at = now()
	          WHERE pending_since IS NOT NULL AND pending_since < $1`
	res, err := r.db.Master.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("release stale pending: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return rows, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
