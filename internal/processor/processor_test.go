package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/processor/mocks"
	"thumbnailGenerator/internal/storage"
)

func TestProcessMessage(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	staleBefore := now.Add(-10 * time.Minute)
	id := uuid.New()
	claimed := &models.Thumbnail{ID: id, PromptUsed: "prompt", Status: models.StatusPending, IsGenerating: true, Attempts: 2}

	tests := []struct {
		name           string
		message        string
		expectClaim    bool
		claimErr       error
		expectGenerate bool
		generateErr    error
		expectedErr    string
	}{
		{
			name:           "Retried",
			message:        fmt.Sprintf(`{"thumbnail_id":"%s"}`, id),
			expectClaim:    true,
			expectGenerate: true,
		},
		{
			name:        "Claim Lost",
			message:     fmt.Sprintf(`{"thumbnail_id":"%s"}`, id),
			expectClaim: true,
			claimErr:    fmt.Errorf("storage.postgres.ClaimForRetry: %w", storage.ErrThumbnailNotFound),
		},
		{
			name:        "Claim Error",
			message:     fmt.Sprintf(`{"thumbnail_id":"%s"}`, id),
			expectClaim: true,
			claimErr:    errors.New("db error"),
			expectedErr: "db error",
		},
		{
			name:           "Generation Fails Again",
			message:        fmt.Sprintf(`{"thumbnail_id":"%s"}`, id),
			expectClaim:    true,
			expectGenerate: true,
			generateErr:    errors.New("Hugging Face error: overloaded"),
			expectedErr:    "overloaded",
		},
		{
			name:        "Malformed Message",
			message:     `not json`,
			expectedErr: "processor.ProcessMessage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claimer := mocks.NewThumbnailClaimer(t)
			generator := mocks.NewThumbnailGenerator(t)

			if tt.expectClaim {
				var result *models.Thumbnail
				if tt.claimErr == nil {
					result = claimed
				}
				claimer.On("ClaimForRetry", mock.Anything, id, staleBefore).Return(result, tt.claimErr).Once()
			}
			if tt.expectGenerate {
				generator.On("Generate", mock.Anything, claimed).Return(claimed, tt.generateErr).Once()
			}

			p := NewRetryProcessor(log, claimer, generator, 10*time.Minute)
			p.now = func() time.Time { return now }

			err := p.ProcessMessage(context.Background(), []byte(tt.message))
			if tt.expectedErr != "" {
				require.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
