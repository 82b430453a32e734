package consumer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type readResult struct {
	msg kafka.Message
	err error
}

// scriptedReader replays results in order and then blocks until ctx is done.
type scriptedReader struct {
	mu      sync.Mutex
	results []readResult
	calls   []time.Time
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	r.calls = append(r.calls, time.Now())
	if len(r.results) > 0 {
		res := r.results[0]
		r.results = r.results[1:]
		r.mu.Unlock()
		return res.msg, res.err
	}
	r.mu.Unlock()

	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *scriptedReader) Close() error { return nil }

func newTestConsumer(reader messageReader) *Consumer {
	return &Consumer{
		reader:     reader,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		minBackoff: 50 * time.Millisecond,
		maxBackoff: 150 * time.Millisecond,
	}
}

func TestReadMessagesBacksOffOnReadError(t *testing.T) {
	brokerDown := errors.New("broker unavailable")
	reader := &scriptedReader{results: []readResult{
		{err: brokerDown},
		{err: brokerDown},
		{err: brokerDown},
		{msg: kafka.Message{Value: []byte("first")}},
		{err: brokerDown},
		{err: io.EOF},
	}}

	var handled []string
	err := newTestConsumer(reader).ReadMessages(context.Background(), func(_ context.Context, value []byte) error {
		handled = append(handled, string(value))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first"}, handled)

	require.Len(t, reader.calls, 6)
	gaps := make([]time.Duration, 0, len(reader.calls)-1)
	for i := 1; i < len(reader.calls); i++ {
		gaps = append(gaps, reader.calls[i].Sub(reader.calls[i-1]))
	}

	// 50ms, 100ms, then capped at 150ms instead of 200ms
	require.GreaterOrEqual(t, gaps[0], 50*time.Millisecond)
	require.GreaterOrEqual(t, gaps[1], 100*time.Millisecond)
	require.GreaterOrEqual(t, gaps[2], 150*time.Millisecond)
	require.Less(t, gaps[2], 200*time.Millisecond)
	// a successful read resets the backoff
	require.GreaterOrEqual(t, gaps[4], 50*time.Millisecond)
	require.Less(t, gaps[4], 150*time.Millisecond)
}

func TestReadMessagesStopsDuringBackoff(t *testing.T) {
	reader := &scriptedReader{results: []readResult{{err: errors.New("broker unavailable")}}}
	c := newTestConsumer(reader)
	c.minBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.ReadMessages(ctx, func(context.Context, []byte) error { return nil })
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop while backing off")
	}
}
