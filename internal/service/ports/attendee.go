package ports

import (
	"context"

	"github.com/popupcity/passes/internal/domain"
)

type AttendeeRepo interface {
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.Attendee, error)
}
