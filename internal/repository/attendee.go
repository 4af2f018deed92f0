package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/popupcity/passes/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AttendeeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendeeRepo(db *dbpg.DB) *AttendeeRepository {
	return &AttendeeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendeeRepository) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Attendee, error) {
	query := `SELECT id, application_id, name, email, category
	          FROM attendees
	          WHERE application_id = $1
	          ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var res []domain.Attendee
	for rows.Next() {
		var a domain.Attendee
		if err := rows.Scan(&a.ID, &a.ApplicationID, &a.Name, &a.Email, &a.Category); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}
