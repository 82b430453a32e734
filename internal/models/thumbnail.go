package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Thumbnail statuses. A record is pending from creation until the pipeline
// either stores an image (generated) or the sweeper gives up on it (failed).
const (
	StatusPending   = "pending"
	StatusGenerated = "generated"
	StatusFailed    = "failed"
)

type Thumbnail struct {
	ID           uuid.UUID       `json:"id"`
	UserID       string          `json:"userId"`
	Title        string          `json:"title"`
	UserPrompt   string          `json:"user_prompt,omitempty"`
	Style        string          `json:"style"`
	AspectRatio  string          `json:"aspect_ratio,omitempty"`
	ColorScheme  string          `json:"color_scheme,omitempty"`
	TextOverlay  json.RawMessage `json:"text_overlay,omitempty"`
	PromptUsed   string          `json:"prompt_used"`
	ImageURL     string          `json:"image_url,omitempty"`
	IsGenerating bool            `json:"isGenerating"`
	Status       string          `json:"status"`
	Attempts     int             `json:"attempts"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RetryMessage is published by the sweeper for every stale pending thumbnail.
type RetryMessage struct {
	ThumbnailID uuid.UUID `json:"thumbnail_id"`
}
