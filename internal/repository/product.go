package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/popupcity/passes/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProductRepository) ListByCity(ctx context.Context, cityID int64) ([]domain.Product, error) {
	query := `SELECT id, city_id, name, description, category, attendee_category,
	                 price, compare_price, min_price, max_price,
	                 start_date, end_date, exclusive, is_active, created_at, updated_at
	          FROM products
	          WHERE city_id = $1
	          ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cityID)
	if err != nil {
		return nil, fmt.Errorf("list products by city: %w", err)
	}
	defer rows.Close()

	var res []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var (
		p           domain.Product
		description sql.NullString
		compare     sql.NullFloat64
		minPrice    sql.NullFloat64
		maxPrice    sql.NullFloat64
		startDate   sql.NullTime
		endDate     sql.NullTime
	)

	if err := rows.Scan(
		&p.ID, &p.CityID, &p.Name, &description, &p.Category, &p.AttendeeCategory,
		&p.Price, &compare, &minPrice, &maxPrice,
		&startDate, &endDate, &p.Exclusive, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Product{}, err
	}

	p.Description = description.String
	if compare.Valid {
		p.ComparePrice = &compare.Float64
	}
	if minPrice.Valid {
		p.MinPrice = &minPrice.Float64
	}
	if maxPrice.Valid {
		p.MaxPrice = &maxPrice.Float64
	}
	if startDate.Valid {
		p.StartDate = &startDate.Time
	}
	if endDate.Valid {
		p.EndDate = &endDate.Time
	}

	return p, nil
}
