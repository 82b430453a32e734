package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"thumbnailGenerator/internal/lib/logger/sl"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailClaimer
type ThumbnailClaimer interface {
	ClaimForRetry(ctx context.Context, id uuid.UUID, staleBefore time.Time) (*models.Thumbnail, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailGenerator
type ThumbnailGenerator interface {
	Generate(ctx context.Context, t *models.Thumbnail) (*models.Thumbnail, error)
}

// RetryProcessor reruns the pipeline for thumbnails published by the sweeper.
type RetryProcessor struct {
	log        *slog.Logger
	claimer    ThumbnailClaimer
	generator  ThumbnailGenerator
	staleAfter time.Duration
	now        func() time.Time
}

func NewRetryProcessor(log *slog.Logger, claimer ThumbnailClaimer, generator ThumbnailGenerator, staleAfter time.Duration) *RetryProcessor {
	return &RetryProcessor{
		log:        log,
		claimer:    claimer,
		generator:  generator,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

func (p *RetryProcessor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "processor.ProcessMessage"

	var msg models.RetryMessage

	if err := json.Unmarshal(message, &msg); err != nil {
		p.log.Error("failed to unmarshal kafka message", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log := p.log.With(slog.String("op", op), slog.String("thumbnail_id", msg.ThumbnailID.String()))

	thumbnail, err := p.claimer.ClaimForRetry(ctx, msg.ThumbnailID, p.now().Add(-p.staleAfter))
	if err != nil {
		if errors.Is(err, storage.ErrThumbnailNotFound) {
			log.Info("thumbnail is no longer stale, skipping retry")
			return nil
		}
		log.Error("failed to claim thumbnail", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("retrying thumbnail generation", slog.Int("attempt", thumbnail.Attempts))

	if _, err = p.generator.Generate(ctx, thumbnail); err != nil {
		log.Error("retry failed", slog.Int("attempt", thumbnail.Attempts), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("thumbnail generated on retry", slog.Int("attempt", thumbnail.Attempts))

	return nil
}
