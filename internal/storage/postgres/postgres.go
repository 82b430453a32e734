package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"thumbnailGenerator/internal/config"
	"thumbnailGenerator/internal/models"
	"thumbnailGenerator/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

const thumbnailColumns = `id, user_id, title, user_prompt, style, aspect_ratio, color_scheme, text_overlay,
        prompt_used, image_url, is_generating, status, attempts, created_at, updated_at`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThumbnail(row rowScanner) (*models.Thumbnail, error) {
	var (
		t           models.Thumbnail
		colorScheme sql.NullString
		textOverlay []byte
		imageURL    sql.NullString
	)

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.UserPrompt,
		&t.Style,
		&t.AspectRatio,
		&colorScheme,
		&textOverlay,
		&t.PromptUsed,
		&imageURL,
		&t.IsGenerating,
		&t.Status,
		&t.Attempts,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.ColorScheme = colorScheme.String
	t.ImageURL = imageURL.String
	if len(textOverlay) > 0 {
		t.TextOverlay = textOverlay
	}

	return &t, nil
}

// SaveThumbnail inserts t as a pending record on its first attempt.
func (s *Storage) SaveThumbnail(ctx context.Context, t models.Thumbnail) (*models.Thumbnail, error) {
	const op = "storage.postgres.SaveThumbnail"

	query := `
        INSERT INTO thumbnails (id, user_id, title, user_prompt, style, aspect_ratio, color_scheme, text_overlay,
            prompt_used, is_generating, status, attempts)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, TRUE, $10, 1)
        RETURNING ` + thumbnailColumns

	row := s.DB.QueryRowContext(ctx, query,
		uuid.New(),
		t.UserID,
		t.Title,
		t.UserPrompt,
		t.Style,
		t.AspectRatio,
		sql.NullString{String: t.ColorScheme, Valid: t.ColorScheme != ""},
		sql.NullString{String: string(t.TextOverlay), Valid: len(t.TextOverlay) > 0},
		t.PromptUsed,
		models.StatusPending,
	)

	thumbnail, err := scanThumbnail(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return thumbnail, nil
}

func (s *Storage) GetThumbnail(ctx context.Context, id uuid.UUID, userID string) (*models.Thumbnail, error) {
	const op = "storage.postgres.GetThumbnail"

	query := `
        SELECT ` + thumbnailColumns + `
        FROM thumbnails
        WHERE id = $1 AND user_id = $2`

	thumbnail, err := scanThumbnail(s.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrThumbnailNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return thumbnail, nil
}

// CompleteThumbnail stores the hosted image URL and leaves the pending state.
// Only a pending record is completed; a record already generated or failed
// yields ErrThumbnailNotFound.
func (s *Storage) CompleteThumbnail(ctx context.Context, id uuid.UUID, imageURL string) (*models.Thumbnail, error) {
	const op = "storage.postgres.CompleteThumbnail"

	query := `
        UPDATE thumbnails
        SET image_url = $1, is_generating = FALSE, status = $2, updated_at = NOW()
        WHERE id = $3 AND status = $4
        RETURNING ` + thumbnailColumns

	thumbnail, err := scanThumbnail(s.DB.QueryRowContext(ctx, query, imageURL, models.StatusGenerated, id, models.StatusPending))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrThumbnailNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return thumbnail, nil
}

// DeleteThumbnail removes the record owned by userID. A missing record is not
// an error.
func (s *Storage) DeleteThumbnail(ctx context.Context, id uuid.UUID, userID string) error {
	const op = "storage.postgres.DeleteThumbnail"

	query := `
        DELETE FROM thumbnails
        WHERE id = $1 AND user_id = $2`

	if _, err := s.DB.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ClaimForRetry takes a stale pending record for another pipeline run. Only
// one claimer wins while the record is stale.
func (s *Storage) ClaimForRetry(ctx context.Context, id uuid.UUID, staleBefore time.Time) (*models.Thumbnail, error) {
	const op = "storage.postgres.ClaimForRetry"

	query := `
        UPDATE thumbnails
        SET attempts = attempts + 1, updated_at = NOW()
        WHERE id = $1 AND status = $2 AND updated_at < $3
        RETURNING ` + thumbnailColumns

	thumbnail, err := scanThumbnail(s.DB.QueryRowContext(ctx, query, id, models.StatusPending, staleBefore))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrThumbnailNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return thumbnail, nil
}

func (s *Storage) ListStalePending(ctx context.Context, staleBefore time.Time, maxAttempts, limit int) ([]uuid.UUID, error) {
	const op = "storage.postgres.ListStalePending"

	query := `
        SELECT id
        FROM thumbnails
        WHERE status = $1 AND updated_at < $2 AND attempts < $3
        ORDER BY updated_at
        LIMIT $4`

	rows, err := s.DB.QueryContext(ctx, query, models.StatusPending, staleBefore, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// FailExhausted moves stale pending records that used all their attempts to
// the failed state and returns how many were moved.
func (s *Storage) FailExhausted(ctx context.Context, staleBefore time.Time, maxAttempts int) (int64, error) {
	const op = "storage.postgres.FailExhausted"

	query := `
        UPDATE thumbnails
        SET status = $1, is_generating = FALSE, updated_at = NOW()
        WHERE status = $2 AND updated_at < $3 AND attempts >= $4`

	result, err := s.DB.ExecContext(ctx, query, models.StatusFailed, models.StatusPending, staleBefore, maxAttempts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
