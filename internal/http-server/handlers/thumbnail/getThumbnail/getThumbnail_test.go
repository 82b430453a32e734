package getThumbnail_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/getThumbnail"
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/getThumbnail/mocks"
	"thumbnailGenerator/internal/http-server/middleware/mwsession"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/storage"
)

func TestGetThumbnail(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	tests := []struct {
		name           string
		thumbnailID    string
		mockThumbnail  *models.Thumbnail
		mockErr        error
		expectGet      bool
		expectedStatus int
	}{
		{
			name:        "Pending",
			thumbnailID: testUUID.String(),
			mockThumbnail: &models.Thumbnail{
				ID:           testUUID,
				UserID:       "user-1",
				IsGenerating: true,
				Status:       models.StatusPending,
			},
			expectGet:      true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid UUID",
			thumbnailID:    "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Not Found",
			thumbnailID:    testUUID.String(),
			mockErr:        fmt.Errorf("storage.postgres.GetThumbnail: %w", storage.ErrThumbnailNotFound),
			expectGet:      true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Internal Error",
			thumbnailID:    testUUID.String(),
			mockErr:        errors.New("db error"),
			expectGet:      true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumbnailGetterMock := mocks.NewThumbnailGetter(t)

			if tt.expectGet {
				thumbnailGetterMock.On("GetThumbnail", mock.Anything, testUUID, "user-1").
					Return(tt.mockThumbnail, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/thumbnails/"+tt.thumbnailID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.thumbnailID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(mwsession.WithUserID(ctx, "user-1"))

			rr := httptest.NewRecorder()

			handler := getThumbnail.New(log, thumbnailGetterMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp getThumbnail.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, testUUID, resp.Thumbnail.ID)
			require.True(t, resp.Thumbnail.IsGenerating)
			require.Empty(t, resp.Thumbnail.ImageURL)
			require.Equal(t, models.StatusPending, resp.Thumbnail.Status)
		})
	}
}
