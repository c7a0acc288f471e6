// Package filehandler provides a rotating JSON file backend suitable for
// handing to reroute.Reroute once the log destination is known.
package filehandler

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults.
const (
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Handler writes records as JSON lines to a size-rotated file.
type Handler struct {
	slog.Handler
	lj *lumberjack.Logger
}

// Option adjusts a Handler under construction.
type Option func(*config)

type config struct {
	level     slog.Leveler
	addSource bool
}

// WithLevel sets the minimum level the handler accepts. Defaults to
// slog.LevelDebug: a debug file wants everything, filtering belongs upstream.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithSource includes the record's source location in the output.
func WithSource() Option {
	return func(c *config) {
		c.addSource = true
	}
}

// New creates a Handler logging to path. The file is rotated at 100MB, keeps
// 3 compressed backups, and drops them after 28 days.
func New(path string, opts ...Option) *Handler {
	cfg := &config{
		level: slog.LevelDebug,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
		Compress:   true,
	}

	return &Handler{
		Handler: slog.NewJSONHandler(lj, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.addSource,
		}),
		lj: lj,
	}
}

// Close closes the underlying file. Records handled after Close reopen it,
// per lumberjack's semantics, so Close belongs at the very end of the file's
// use — typically right after rerouting away from this handler.
func (h *Handler) Close() error {
	return h.lj.Close()
}
