package getThumbnail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"thumbnailGenerator/internal/http-server/middleware/mwsession"
	"thumbnailGenerator/internal/lib/api/response"
	"thumbnailGenerator/internal/lib/logger/sl"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/storage"
)

type Response struct {
	response.Response
	Thumbnail models.Thumbnail `json:"thumbnail"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailGetter
type ThumbnailGetter interface {
	GetThumbnail(ctx context.Context, id uuid.UUID, userID string) (*models.Thumbnail, error)
}

// New returns a thumbnail owned by the caller so clients can poll a pending
// generation.
// @Summary      Gets a thumbnail
// @Tags         thumbnails
// @Produce      json
// @Param        X-User-ID  header  string  true  "Authenticated user"
// @Param        id         path    string  true  "Thumbnail ID"
// @Success      200  {object}  getThumbnail.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /thumbnails/{id} [get]
func New(log *slog.Logger, thumbnailGetter ThumbnailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.thumbnail.getThumbnail.New"

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
			log.Error("failed to parse thumbnail ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid thumbnail ID"))
			return
		}

		thumbnail, err := thumbnailGetter.GetThumbnail(r.Context(), thumbnailID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrThumbnailNotFound) {
				log.Warn("thumbnail not found", slog.String("thumbnail_id", thumbnailID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("thumbnail not found"))
				return
			}

			log.Error("failed to get thumbnail from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get thumbnail"))
			return
		}

		render.JSON(w, r, Response{
			Response:  response.OK(""),
			Thumbnail: *thumbnail,
		})
	}
}
