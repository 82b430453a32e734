// Package sweeper recovers thumbnails stuck in the pending state. Stale
// records with attempts left are queued for another run; the rest are marked
// failed.
package sweeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"thumbnailGenerator/internal/config"
	"thumbnailGenerator/internal/kafka/producer"
	"thumbnailGenerator/internal/lib/logger/sl"
	"thumbnailGenerator/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StaleThumbnails
type StaleThumbnails interface {
	ListStalePending(ctx context.Context, staleBefore time.Time, maxAttempts, limit int) ([]uuid.UUID, error)
	FailExhausted(ctx context.Context, staleBefore time.Time, maxAttempts int) (int64, error)
}

type Sweeper struct {
	log       *slog.Logger
	storage   StaleThumbnails
	publisher producer.ProducerIface
	cfg       config.Sweeper
	now       func() time.Time
}

func New(log *slog.Logger, storage StaleThumbnails, publisher producer.ProducerIface, cfg config.Sweeper) *Sweeper {
	return &Sweeper{
		log:       log.With(slog.String("component", "sweeper")),
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.log.Info("sweeper started", slog.String("interval", s.cfg.Interval.String()))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sweeper stopped")
			return nil
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.log.Error("sweep failed", sl.Err(err))
			}
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) error {
	const op = "sweeper.Sweep"

	staleBefore := s.now().Add(-s.cfg.StaleAfter)

	failed, err := s.storage.FailExhausted(ctx, staleBefore, s.cfg.MaxAttempts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if failed > 0 {
		s.log.Warn("thumbnails marked as failed", slog.Int64("count", failed))
	}

	ids, err := s.storage.ListStalePending(ctx, staleBefore, s.cfg.MaxAttempts, s.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, id := range ids {
		message, err := json.Marshal(models.RetryMessage{ThumbnailID: id})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err = s.publisher.SendMessage(ctx, message); err != nil {
			return fmt.Errorf("%s: publish %s: %w", op, id, err)
		}
	}

	if len(ids) > 0 {
		s.log.Info("stale thumbnails queued for retry", slog.Int("count", len(ids)))
	}

	return nil
}
