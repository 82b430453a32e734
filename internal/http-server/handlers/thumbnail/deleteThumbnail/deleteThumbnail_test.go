package deleteThumbnail_test

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
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/deleteThumbnail"
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/deleteThumbnail/mocks"
	"thumbnailGenerator/internal/http-server/middleware/mwsession"
)

func TestDeleteThumbnail(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	tests := []struct {
		name           string
		thumbnailID    string
		expectDelete   bool
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			thumbnailID:    testUUID.String(),
			expectDelete:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Thumbnail deleted successfully"}`,
		},
		{
			name:           "Invalid UUID",
			thumbnailID:    "invalid-uuid",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Thumbnail deleted successfully"}`,
		},
		{
			name:           "Internal Error",
			thumbnailID:    testUUID.String(),
			expectDelete:   true,
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"db error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumbnailDeleterMock := mocks.NewThumbnailDeleter(t)

			if tt.expectDelete {
				thumbnailDeleterMock.On("DeleteThumbnail", mock.Anything, testUUID, "user-1").Return(tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/thumbnails/%s", tt.thumbnailID), nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.thumbnailID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(mwsession.WithUserID(ctx, "user-1"))

			rr := httptest.NewRecorder()

			handler := deleteThumbnail.New(log, thumbnailDeleterMock)
			handler.ServeHTTP(rr, req)

			if !tt.expectDelete {
				thumbnailDeleterMock.AssertNotCalled(t, "DeleteThumbnail", mock.Anything, mock.Anything, mock.Anything)
			}

			require.Equal(t, tt.expectedStatus, rr.Code)

			actualBody := rr.Body.String()
			var actualMap, expectedMap map[string]interface{}
			err := json.Unmarshal([]byte(actualBody), &actualMap)
			require.NoError(t, err)
			err = json.Unmarshal([]byte(tt.expectedBody), &expectedMap)
			require.NoError(t, err)
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
