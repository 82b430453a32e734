package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"thumbnailGenerator/internal/config"
)

const testConfig = `
env: dev
http_server:
  address: "0.0.0.0:9000"
  timeout: 10s
database:
  host: db
  dbname: thumbs
kafka:
  brokers: ["kafka:9092"]
  topic: retries
assets:
  bucket: public-thumbs
  public_url: "https://cdn.example.com"
sweeper:
  stale_after: 5m
  max_attempts: 4
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_secret")

	cfg, err := config.Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Address)
	require.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	require.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "hf_secret", cfg.Inference.Token)
	require.Contains(t, cfg.Inference.URL, "stable-diffusion-xl-base-1.0")
	require.Equal(t, "public-thumbs", cfg.Assets.Bucket)
	require.Equal(t, "./images", cfg.Staging.Dir)
	require.Equal(t, "X-User-ID", cfg.Session.UserHeader)
	require.Equal(t, 5*time.Minute, cfg.Sweeper.StaleAfter)
	require.Equal(t, 4, cfg.Sweeper.MaxAttempts)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("HF_TOKEN", "")
	require.NoError(t, os.Unsetenv("HF_TOKEN"))

	_, err := config.Load(writeConfig(t, testConfig))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "config file does not exist")
}

func TestLoadRejectsShortStaleAfter(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_secret")

	tests := []struct {
		name   string
		config string
	}{
		{
			name: "Below Inference Timeout",
			config: `
inference:
  timeout: 2m
sweeper:
  stale_after: 1m
`,
		},
		{
			name: "Equal To HTTP Timeout",
			config: `
http_server:
  timeout: 5m
inference:
  timeout: 1m
sweeper:
  stale_after: 5m
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.config))
			require.ErrorContains(t, err, "sweeper.stale_after")
		})
	}
}

func TestLoadRejectsNegativeAttempts(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_secret")

	// a zero value falls back to the default, so only a negative one survives
	_, err := config.Load(writeConfig(t, "sweeper:\n  max_attempts: -1\n"))
	require.ErrorContains(t, err, "sweeper.max_attempts")
}
