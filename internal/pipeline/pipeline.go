// Package pipeline turns a pending thumbnail into a hosted image: inference,
// staging on local disk, upload, then completion of the record.
//
// A run that fails at any step leaves the record pending. The sweeper later
// retries it or moves it to the failed state.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"thumbnailGenerator/internal/lib/logger/sl"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/staging"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageGenerator
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type Stager interface {
	Stage(data []byte) (*staging.File, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AssetUploader
type AssetUploader interface {
	Upload(ctx context.Context, filePath string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailCompleter
type ThumbnailCompleter interface {
	CompleteThumbnail(ctx context.Context, id uuid.UUID, imageURL string) (*models.Thumbnail, error)
}

type Pipeline struct {
	log       *slog.Logger
	generator ImageGenerator
	stager    Stager
	uploader  AssetUploader
	completer ThumbnailCompleter
}

func New(log *slog.Logger, generator ImageGenerator, stager Stager, uploader AssetUploader, completer ThumbnailCompleter) *Pipeline {
	return &Pipeline{
		log:       log,
		generator: generator,
		stager:    stager,
		uploader:  uploader,
		completer: completer,
	}
}

// Generate runs every step for t in order and returns the completed record.
// The staging file is removed on every exit path.
func (p *Pipeline) Generate(ctx context.Context, t *models.Thumbnail) (*models.Thumbnail, error) {
	const op = "pipeline.Generate"

	log := p.log.With(
		slog.String("op", op),
		slog.String("thumbnail_id", t.ID.String()),
		slog.Int("attempt", t.Attempts),
	)

	log.Info("generating image")

	data, err := p.generator.Generate(ctx, t.PromptUsed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	file, err := p.stager.Stage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := file.Release(); err != nil {
			log.Warn("failed to remove staging file", slog.String("path", file.Path), sl.Err(err))
		}
	}()

	log.Debug("image staged", slog.String("path", file.Path))

	imageURL, err := p.uploader.Upload(ctx, file.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	completed, err := p.completer.CompleteThumbnail(ctx, t.ID, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("thumbnail generated", slog.String("image_url", imageURL))

	return completed, nil
}
