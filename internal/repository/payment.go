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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO payments (id, application_id, city_id, status, amount, currency, checkout_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.ExecContext(
		ctx, query, p.ID, p.ApplicationID, p.CityID, p.Status,
		p.Amount, p.Currency, p.CheckoutURL, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	itemQuery := `INSERT INTO payment_items (payment_id, attendee_id, product_id, quantity, custom_amount)
	              VALUES ($1, $2, $3, $4, $5)`
	for _, it := range p.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, p.ID, it.AttendeeID, it.ProductID, it.Quantity, nullFloat(it.CustomAmount)); err != nil {
			return fmt.Errorf("insert payment item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT id, application_id, city_id, status, amount, currency, external_id, checkout_url, created_at, updated_at
	          FROM payments
	          WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var (
		p          domain.Payment
		externalID sql.NullString
	)
	if err := row.Scan(&p.ID, &p.ApplicationID, &p.CityID, &p.Status, &p.Amount, &p.Currency, &externalID, &p.CheckoutURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	if externalID.Valid {
		p.ExternalID = &externalID.String
	}

	items, err := r.listItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items

	return &p, nil
}

func (r *PaymentRepository) listItems(ctx context.Context, paymentID string) ([]domain.CartItem, error) {
	query := `SELECT attendee_id, product_id, quantity, custom_amount
	          FROM payment_items
	          WHERE payment_id = $1
	          ORDER BY attendee_id, product_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list payment items: %w", err)
	}
	defer rows.Close()

	return scanCartItems(rows)
}

// Approve flips a pending payment to approved. The status guard in the
// WHERE clause makes the provider callback idempotent-safe under
// concurrent delivery.
func (r *PaymentRepository) Approve(ctx context.Context, id, externalID string) error {
	query := `UPDATE payments SET status = $2, external_id = $3, updated_at = now()
	          WHERE id = $1 AND status = $4`
	res, err := r.db.Master.ExecContext(ctx, query, id, domain.PaymentApproved, externalID, domain.PaymentPending)
	if err != nil {
		return fmt.Errorf("approve payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotPending
	}

	return nil
}

// ListPurchasedItems returns every item across the application's
// approved payments.
func (r *PaymentRepository) ListPurchasedItems(ctx context.Context, applicationID int64) ([]domain.CartItem, error) {
	query := `SELECT pi.attendee_id, pi.product_id, pi.quantity, pi.custom_amount
	          FROM payment_items pi
	          JOIN payments p ON p.id = pi.payment_id
	          WHERE p.application_id = $1 AND p.status = $2
	          ORDER BY pi.attendee_id, pi.product_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, applicationID, domain.PaymentApproved)
	if err != nil {
		return nil, fmt.Errorf("list purchased items: %w", err)
	}
	defer rows.Close()

	return scanCartItems(rows)
}

func scanCartItems(rows *sql.Rows) ([]domain.CartItem, error) {
	var res []domain.CartItem
	for rows.Next() {
		var (
			it     domain.CartItem
			amount sql.NullFloat64
		)
		if err := rows.Scan(&it.AttendeeID, &it.ProductID, &it.Quantity, &amount); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if amount.Valid {
			it.CustomAmount = &amount.Float64
		}
		res = append(res, it)
	}

	return res, rows.Err()
}
