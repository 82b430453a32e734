package huggingface

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Image parameters sent with every request. The model is asked for PNG; the
// stager also accepts JPEG, GIF, BMP and TIFF, and keeps any other image
// format as returned.
const (
	Width             = 1280
	Height            = 720
	InferenceSteps    = 30
	GuidanceScale     = 7.5
	defaultAcceptType = "image/png"
)

// Error is returned when the inference API answers with a non-success status.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Hugging Face error: %s", e.Body)
}

type Client struct {
	client *resty.Client
	url    string
}

type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

func New(cfg Config) *Client {
	client := resty.New()
	client.SetAuthToken(cfg.Token)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", defaultAcceptType)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		client: client,
		url:    cfg.URL,
	}
}

// Generate renders prompt and returns the encoded image bytes.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	const op = "inference.huggingface.Generate"

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(request{
			Inputs: prompt,
			Parameters: parameters{
				Width:             Width,
				Height:            Height,
				NumInferenceSteps: InferenceSteps,
				GuidanceScale:     GuidanceScale,
			},
		}).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.IsError() {
		return nil, &Error{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("%s: empty image in response", op)
	}

	return body, nil
}
