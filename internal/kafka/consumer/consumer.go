package consumer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"thumbnailGenerator/internal/config"
)

const (
	minBackoff = 100 * time.Millisecond
	maxBackoff = 5 * time.Second
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	reader     messageReader
	log        *slog.Logger
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewConsumer(kafkaCfg *config.Kafka, log *slog.Logger) (*Consumer, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        kafkaCfg.Brokers,
		Topic:          kafkaCfg.Topic,
		GroupID:        kafkaCfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        1 * time.Second,
		CommitInterval: 1 * time.Second,
	})

	return &Consumer{
		reader:     reader,
		log:        log,
		minBackoff: minBackoff,
		maxBackoff: maxBackoff,
	}, nil
}

// ReadMessages feeds every message to handler until ctx is done. Handler
// errors are logged and the message is committed anyway. Read errors are
// retried with a capped exponential backoff.
func (c *Consumer) ReadMessages(ctx context.Context, handler func(context.Context, []byte) error) error {
	c.log.Info("kafka consumer started")

	backoff := c.minBackoff

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.log.Info("kafka consumer stopped")
				return nil
			}
			c.log.Error(
				"error reading message from kafka",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", backoff),
			)

			select {
			case <-ctx.Done():
				c.log.Info("kafka consumer stopped")
				return nil
			case <-time.After(backoff):
			}

			backoff = min(backoff*2, c.maxBackoff)
			continue
		}

		backoff = c.minBackoff

		c.log.Info(
			"message received",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
		)

		if err = handler(ctx, m.Value); err != nil {
			c.log.Error("error handling message", slog.String("error", err.Error()))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
