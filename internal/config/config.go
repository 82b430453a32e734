package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Kafka      Kafka      `yaml:"kafka"`
	Inference  Inference  `yaml:"inference"`
	Assets     Assets     `yaml:"assets"`
	Staging    Staging    `yaml:"staging"`
	Session    Session    `yaml:"session"`
	Sweeper    Sweeper    `yaml:"sweeper"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3m"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"thumbnails"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env-default:"thumbnail-retries"`
	GroupID string   `yaml:"group_id" env-default:"thumbnail-generator"`
}

// Inference describes the text-to-image endpoint. Token is only ever read
// from the environment.
type Inference struct {
	URL     string        `yaml:"url" env:"INFERENCE_URL" env-default:"https://router.huggingface.co/hf-inference/models/stabilityai/stable-diffusion-xl-base-1.0"`
	Token   string        `yaml:"-" env:"HF_TOKEN" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"2m"`
}

type Assets struct {
	Endpoint  string `yaml:"endpoint" env:"ASSETS_ENDPOINT"`
	Region    string `yaml:"region" env:"ASSETS_REGION" env-default:"us-east-1"`
	Bucket    string `yaml:"bucket" env:"ASSETS_BUCKET" env-default:"thumbnails"`
	AccessKey string `yaml:"-" env:"ASSETS_ACCESS_KEY"`
	SecretKey string `yaml:"-" env:"ASSETS_SECRET_KEY"`
	PublicURL string `yaml:"public_url" env:"ASSETS_PUBLIC_URL"`
	Prefix    string `yaml:"prefix" env-default:"thumbnails"`
	NoSSL     bool   `yaml:"no_ssl" env:"ASSETS_NO_SSL"`
}

type Staging struct {
	Dir string `yaml:"dir" env:"STAGING_DIR" env-default:"./images"`
}

type Session struct {
	UserHeader string `yaml:"user_header" env-default:"X-User-ID"`
}

type Sweeper struct {
	Interval    time.Duration `yaml:"interval" env-default:"1m"`
	StaleAfter  time.Duration `yaml:"stale_after" env-default:"10m"`
	MaxAttempts int           `yaml:"max_attempts" env-default:"3"`
	BatchSize   int           `yaml:"batch_size" env-default:"50"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// validate rejects a sweeper that could treat a request still in flight as
// stale and queue a second run for it.
func (c *Config) validate() error {
	longest := max(c.Inference.Timeout, c.HTTPServer.Timeout)

	if c.Sweeper.StaleAfter <= longest {
		return fmt.Errorf("sweeper.stale_after (%s) must exceed the longest request timeout (%s)", c.Sweeper.StaleAfter, longest)
	}

	if c.Sweeper.MaxAttempts < 1 {
		return fmt.Errorf("sweeper.max_attempts must be at least 1, got %d", c.Sweeper.MaxAttempts)
	}

	return nil
}
