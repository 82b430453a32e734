package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "thumbnailGenerator/docs"
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/deleteThumbnail"
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/generateThumbnail"
	"thumbnailGenerator/internal/http-server/handlers/thumbnail/getThumbnail"
	"thumbnailGenerator/internal/http-server/middleware/mwlogger"
	"thumbnailGenerator/internal/http-server/middleware/mwsession"
)

type Storage interface {
	generateThumbnail.ThumbnailSaver
	getThumbnail.ThumbnailGetter
	deleteThumbnail.ThumbnailDeleter
}

func New(log *slog.Logger, userHeader string, storage Storage, generator generateThumbnail.ThumbnailGenerator) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/thumbnails", func(r chi.Router) {
		r.Use(mwsession.New(log, userHeader))

		r.Post("/generate", generateThumbnail.New(log, storage, generator))
		r.Get("/{id}", getThumbnail.New(log, storage))
		r.Delete("/{id}", deleteThumbnail.New(log, storage))
	})

	return router
}
