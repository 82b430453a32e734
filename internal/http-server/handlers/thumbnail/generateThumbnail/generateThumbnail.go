package generateThumbnail

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"thumbnailGenerator/internal/http-server/middleware/mwsession"
	"thumbnailGenerator/internal/lib/api/response"
	"thumbnailGenerator/internal/lib/logger/sl"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/prompt"
)

type Request struct {
	Title       string          `json:"title" validate:"required"`
	Prompt      string          `json:"prompt,omitempty"`
	Style       string          `json:"style" validate:"required"`
	AspectRatio string          `json:"aspect_ratio,omitempty"`
	ColorScheme string          `json:"color_scheme,omitempty"`
	TextOverlay json.RawMessage `json:"text_overlay,omitempty" swaggertype:"object"`
}

type Response struct {
	response.Response
	Thumbnail *models.Thumbnail `json:"thumbnail,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailSaver
type ThumbnailSaver interface {
	SaveThumbnail(ctx context.Context, t models.Thumbnail) (*models.Thumbnail, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ThumbnailGenerator
type ThumbnailGenerator interface {
	Generate(ctx context.Context, t *models.Thumbnail) (*models.Thumbnail, error)
}

// New generates a thumbnail synchronously.
// @Summary      Generates a thumbnail
// @Description  Composes a prompt from the style and color presets, renders it and hosts the image
// @Tags         thumbnails
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                     true  "Authenticated user"
// @Param        request    body    generateThumbnail.Request  true  "Thumbnail request"
// @Success      200  {object}  generateThumbnail.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /thumbnails/generate [post]
func New(log *slog.Logger, saver ThumbnailSaver, generator ThumbnailGenerator) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.thumbnail.generateThumbnail.New"

		log := log.With(slog.String("op", op))

		userID, ok := mwsession.UserID(r.Context())
		if !ok {
			log.Warn("request without user id")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if !errors.As(err, &validateErr) {
				log.Error("failed to validate request", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		composed, err := prompt.Build(prompt.Request{
			Title:       req.Title,
			UserPrompt:  req.Prompt,
			Style:       req.Style,
			ColorScheme: req.ColorScheme,
		})
		if err != nil {
			log.Error("failed to compose prompt", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		thumbnail, err := saver.SaveThumbnail(r.Context(), models.Thumbnail{
			UserID:      userID,
			Title:       req.Title,
			UserPrompt:  req.Prompt,
			Style:       req.Style,
			AspectRatio: req.AspectRatio,
			ColorScheme: req.ColorScheme,
			TextOverlay: req.TextOverlay,
			PromptUsed:  composed,
		})
		if err != nil {
			log.Error("failed to save pending thumbnail", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.String("thumbnail_id", thumbnail.ID.String()))
		log.Info("pending thumbnail saved")

		generated, err := generator.Generate(r.Context(), thumbnail)
		if err != nil {
			log.Error("failed to generate thumbnail", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log.Info("thumbnail generated successfully")

		render.JSON(w, r, Response{
			Response:  response.OK("Thumbnail Generated"),
			Thumbnail: generated,
		})
	}
}
