package deleteThumbnail

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"thumbnailGenerator/internal/http-server/middleware/mwsession"
	"thumbnailGenerator/internal/lib/api/response"
	"thumbnailGenerator/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailDeleter
type ThumbnailDeleter interface {
	DeleteThumbnail(ctx context.Context, id uuid.UUID, userID string) error
}

const deletedMessage = "Thumbnail deleted successfully"

type Response struct {
	response.Response
}

// New deletes a thumbnail record owned by the caller. The hosted image is kept.
// @Summary      Deletes a thumbnail
// @Tags         thumbnails
// @Produce      json
// @Param        X-User-ID  header  string  true  "Authenticated user"
// @Param        id         path    string  true  "Thumbnail ID"
// @Success      200  {object}  deleteThumbnail.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /thumbnails/{id} [delete]
func New(log *slog.Logger, thumbnailDeleter ThumbnailDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.thumbnail.deleteThumbnail.New"

		log := log.With(slog.String("op", op))

		userID, ok := mwsession.UserID(r.Context())
		if !ok {
			log.Warn("request without user id")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		idStr := chi.URLParam(r, "id")
		thumbnailID, err := uuid.Parse(idStr)
		if err != nil {
			// no record can carry a malformed id, so there is nothing to delete
			log.Warn("malformed thumbnail ID, nothing to delete", slog.String("thumbnail_id", idStr), sl.Err(err))
			render.JSON(w, r, Response{
				Response: response.OK(deletedMessage),
			})
			return
		}

		log = log.With(
			slog.String("thumbnail_id", thumbnailID.String()),
			slog.String("user_id", userID),
		)

		log.Info("attempting to delete thumbnail")

		if err = thumbnailDeleter.DeleteThumbnail(r.Context(), thumbnailID, userID); err != nil {
			log.Error("failed to delete thumbnail from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log.Info("thumbnail deleted successfully")

		render.JSON(w, r, Response{
			Response: response.OK(deletedMessage),
		})
	}
}
