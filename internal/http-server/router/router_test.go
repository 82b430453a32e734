package router_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/google/uuid"
	"thumbnailGenerator/internal/http-server/router"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/storage"
)

type memoryStorage struct {
	mu         sync.Mutex
	thumbnails map[uuid.UUID]models.Thumbnail
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{thumbnails: make(map[uuid.UUID]models.Thumbnail)}
}

func (s *memoryStorage) SaveThumbnail(_ context.Context, t models.Thumbnail) (*models.Thumbnail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.New()
	t.IsGenerating = true
	t.Status = models.StatusPending
	t.Attempts = 1
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.thumbnails[t.ID] = t

	return &t, nil
}

func (s *memoryStorage) GetThumbnail(_ context.Context, id uuid.UUID, userID string) (*models.Thumbnail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.thumbnails[id]
	if !ok || t.UserID != userID {
		return nil, storage.ErrThumbnailNotFound
	}

	return &t, nil
}

func (s *memoryStorage) DeleteThumbnail(_ context.Context, id uuid.UUID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.thumbnails[id]; ok && t.UserID == userID {
		delete(s.thumbnails, id)
	}

	return nil
}

func (s *memoryStorage) complete(id uuid.UUID, imageURL string) *models.Thumbnail {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.thumbnails[id]
	t.ImageURL = imageURL
	t.IsGenerating = false
	t.Status = models.StatusGenerated
	s.thumbnails[id] = t

	return &t
}

type fakeGenerator struct {
	storage *memoryStorage
	err     error
}

func (g *fakeGenerator) Generate(_ context.Context, t *models.Thumbnail) (*models.Thumbnail, error) {
	if g.err != nil {
		return nil, g.err
	}

	return g.storage.complete(t.ID, "https://cdn.example.com/thumbnails/"+t.ID.String()+".png"), nil
}

func newServer(t *testing.T, generatorErr error) (*httpexpect.Expect, *memoryStorage) {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))
	store := newMemoryStorage()

	srv := httptest.NewServer(router.New(log, "X-User-ID", store, &fakeGenerator{storage: store, err: generatorErr}))
	t.Cleanup(srv.Close)

	return httpexpect.Default(t, srv.URL), store
}

func TestThumbnailLifecycle(t *testing.T) {
	e, _ := newServer(t, nil)

	thumbnail := e.POST("/thumbnails/generate").
		WithHeader("X-User-ID", "user-1").
		WithJSON(map[string]interface{}{
			"title":        "Cats",
			"style":        "Photorealistic",
			"color_scheme": "ocean",
			"prompt":       "a cat surfing",
			"aspect_ratio": "16:9",
			"text_overlay": true,
		}).
		Expect().
		Status(http.StatusOK).
		JSON().Object()

	thumbnail.Value("message").String().IsEqual("Thumbnail Generated")
	thumbnail.Value("thumbnail").Object().Value("isGenerating").Boolean().IsFalse()
	thumbnail.Value("thumbnail").Object().Value("image_url").String().NotEmpty()
	thumbnail.Value("thumbnail").Object().Value("text_overlay").Boolean().IsTrue()
	thumbnail.Value("thumbnail").Object().Value("prompt_used").String().
		Contains("Color scheme: cool blue and teal tones").
		Contains("Scene: a cat surfing.")

	id := thumbnail.Value("thumbnail").Object().Value("id").String().Raw()

	e.GET("/thumbnails/"+id).
		WithHeader("X-User-ID", "user-1").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("thumbnail").Object().
		Value("status").String().IsEqual(models.StatusGenerated)

	t.Run("Other User Cannot Delete", func(t *testing.T) {
		e.DELETE("/thumbnails/"+id).
			WithHeader("X-User-ID", "user-2").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("message").String().IsEqual("Thumbnail deleted successfully")

		e.GET("/thumbnails/"+id).
			WithHeader("X-User-ID", "user-1").
			Expect().
			Status(http.StatusOK)
	})

	t.Run("Owner Deletes", func(t *testing.T) {
		e.DELETE("/thumbnails/"+id).
			WithHeader("X-User-ID", "user-1").
			Expect().
			Status(http.StatusOK)

		e.GET("/thumbnails/"+id).
			WithHeader("X-User-ID", "user-1").
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("Delete Malformed ID", func(t *testing.T) {
		e.DELETE("/thumbnails/not-a-uuid").
			WithHeader("X-User-ID", "user-1").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("message").String().IsEqual("Thumbnail deleted successfully")
	})

	t.Run("Delete Nonexistent", func(t *testing.T) {
		e.DELETE("/thumbnails/"+uuid.NewString()).
			WithHeader("X-User-ID", "user-1").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("status").String().IsEqual("OK")
	})
}

func TestGenerationFailureLeavesPendingRecord(t *testing.T) {
	e, store := newServer(t, errors.New("Hugging Face error: model loading"))

	e.POST("/thumbnails/generate").
		WithHeader("X-User-ID", "user-1").
		WithJSON(map[string]string{"title": "Cats", "style": "Minimalist"}).
		Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().
		Value("message").String().IsEqual("Hugging Face error: model loading")

	store.mu.Lock()
	defer store.mu.Unlock()

	if len(store.thumbnails) != 1 {
		t.Fatalf("expected one pending thumbnail, got %d", len(store.thumbnails))
	}
	for _, thumbnail := range store.thumbnails {
		if !thumbnail.IsGenerating || thumbnail.ImageURL != "" || thumbnail.Status != models.StatusPending {
			t.Fatalf("expected pending thumbnail, got %+v", thumbnail)
		}
	}
}

func TestUnauthorized(t *testing.T) {
	e, _ := newServer(t, nil)

	e.POST("/thumbnails/generate").
		WithJSON(map[string]string{"title": "Cats", "style": "Minimalist"}).
		Expect().
		Status(http.StatusUnauthorized)

	e.DELETE("/thumbnails/" + uuid.NewString()).
		Expect().
		Status(http.StatusUnauthorized)
}
