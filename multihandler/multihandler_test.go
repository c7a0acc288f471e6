package multihandler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/require"
)

type fakeFlusher struct {
	slog.Handler
	flushes atomic.Int64
	err     error
}

func (f *fakeFlusher) Flush() error {
	f.flushes.Add(1)
	return f.err
}

func TestFanout(t *testing.T) {
	t.Parallel()

	var bufA, bufB bytes.Buffer
	handler := New(
		slog.NewJSONHandler(&bufA, nil),
		slog.NewJSONHandler(&bufB, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	logger := slog.New(handler)

	logger.Info("info_msg")
	logger.Warn("warn_msg")

	require.Contains(t, bufA.String(), "info_msg")
	require.Contains(t, bufA.String(), "warn_msg")
	require.NotContains(t, bufB.String(), "info_msg", "second child filters below warn")
	require.Contains(t, bufB.String(), "warn_msg")
}

func TestTimestampsNormalizedToUTC(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := New(slog.NewJSONHandler(&buf, nil))

	record := slog.NewRecord(
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60)),
		slog.LevelInfo, "tz", 0,
	)
	require.NoError(t, handler.Handle(context.Background(), record))

	var line map[string]interface{}
	require.NoError(t, json.NewDecoder(&buf).Decode(&line))

	ts, err := time.Parse(time.RFC3339, line["time"].(string))
	require.NoError(t, err)
	require.Equal(t, time.UTC, ts.Location())
	require.Equal(t, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), ts)
}

func TestNoChildrenDiscards(t *testing.T) {
	t.Parallel()

	handler := New()
	logger := slog.New(handler)

	logger.Error("into the void")
	require.NoError(t, handler.Flush())
}

func TestFlushFansOut(t *testing.T) {
	t.Parallel()

	flushErr := errors.New("disk full")
	plain := slog.NewTextHandler(io.Discard, nil)
	failing := &fakeFlusher{Handler: plain, err: flushErr}
	healthy := &fakeFlusher{Handler: plain}

	handler := New(plain, failing, healthy)

	require.ErrorIs(t, handler.Flush(), flushErr)
	require.Equal(t, int64(1), failing.flushes.Load())
	require.Equal(t, int64(1), healthy.flushes.Load(), "flush must reach every child even after an error")
}
