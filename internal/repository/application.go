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

type ApplicationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApplicationRepo(db *dbpg.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, city_id, email, status, discount_assigned, credit, telegram_chat_id, created_at, updated_at
	          FROM applications
	          WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	var (
		a      domain.Application
		chatID sql.NullInt64
	)
	if err := row.Scan(&a.ID, &a.CityID, &a.Email, &a.Status, &a.DiscountAssigned, &a.Credit, &chatID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	if chatID.Valid {
		a.TelegramChatID = &chatID.Int64
	}

	return &a, nil
}
