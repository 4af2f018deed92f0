package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type cartReleaser interface {
	ReleaseStalePending(ctx context.Context) (int64, error)
}

// Scheduler periodically releases carts stuck in the pending state, so
// selections parked behind an abandoned checkout redirect restore again.
type Scheduler struct {
	cartService cartReleaser
	interval    time.Duration
	logger      logger.Logger
}

func New(
	cartService cartReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		cartService: cartService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.cartService.ReleaseStalePending(ctx)
	if err != nil {
		s.logger.Error("failed to release stale pending carts",
			logger.String("error", err.Error()),
		)
		return
	}

	if released > 0 {
		s.logger.Info("stale pending carts released",
			logger.Int64("count", released),
		)
	}
}
