package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"thumbnailGenerator/internal/assets/s3"
	"thumbnailGenerator/internal/config"
	"thumbnailGenerator/internal/http-server/router"
	"thumbnailGenerator/internal/inference/huggingface"
	"thumbnailGenerator/internal/kafka/consumer"
	"thumbnailGenerator/internal/kafka/producer"
	"thumbnailGenerator/internal/lib/logger/handlers/slogpretty"
	"thumbnailGenerator/internal/lib/logger/sl"
	"thumbnailGenerator/internal/pipeline"
	"thumbnailGenerator/internal/processor"
	"thumbnailGenerator/internal/staging"
	"thumbnailGenerator/internal/storage/postgres"
	"thumbnailGenerator/internal/sweeper"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init -g cmd/thumbnail-generator/main.go -d ../../ -o ../../docs

// @title        Thumbnail Generator API
// @version      1.0
// @description  Generates video thumbnails from style and color presets.
// @BasePath     /
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting thumbnail generator", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	uploader, err := s3.New(ctx, s3.Config{
		Endpoint:  cfg.Assets.Endpoint,
		Region:    cfg.Assets.Region,
		Bucket:    cfg.Assets.Bucket,
		AccessKey: cfg.Assets.AccessKey,
		SecretKey: cfg.Assets.SecretKey,
		PublicURL: cfg.Assets.PublicURL,
		Prefix:    cfg.Assets.Prefix,
		NoSSL:     cfg.Assets.NoSSL,
	})
	if err != nil {
		log.Error("failed to create asset uploader", sl.Err(err))
		os.Exit(1)
	}

	kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka producer", sl.Err(err))
		os.Exit(1)
	}

	kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka consumer", sl.Err(err))
		os.Exit(1)
	}

	inference := huggingface.New(huggingface.Config{
		URL:     cfg.Inference.URL,
		Token:   cfg.Inference.Token,
		Timeout: cfg.Inference.Timeout,
	})

	thumbnailPipeline := pipeline.New(
		log,
		inference,
		staging.New(cfg.Staging.Dir, huggingface.Width, huggingface.Height),
		uploader,
		storage,
	)

	retryProcessor := processor.NewRetryProcessor(log, storage, thumbnailPipeline, cfg.Sweeper.StaleAfter)
	stuckSweeper := sweeper.New(log, storage, kafkaProducer, cfg.Sweeper)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, cfg.Session.UserHeader, storage, thumbnailPipeline),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return kafkaConsumer.ReadMessages(gCtx, retryProcessor.ProcessMessage)
	})

	g.Go(func() error {
		return stuckSweeper.Run(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()

		log.Info("application stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		log.Error("application stopped with error", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", sl.Err(err))
	}

	log.Info("postgres connection closed")

	if err = kafkaProducer.Close(); err != nil {
		log.Error("failed to close kafka producer", sl.Err(err))
	}

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("failed to close kafka consumer", sl.Err(err))
	}

	log.Info("kafka connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
