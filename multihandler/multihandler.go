// Package multihandler composes several slog.Handlers into a single handler,
// so that one reroute target can feed multiple destinations (say, stderr plus
// a debug file). The composition is one backend value from the proxy's point
// of view; fanning out happens inside it.
package multihandler

import (
	"context"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Flusher is the optional flushing capability of a child handler.
type Flusher interface {
	Flush() error
}

// Handler fans records out to a fixed set of child handlers. Record
// timestamps are normalized to UTC before fanout.
type Handler struct {
	slog.Handler
	children []slog.Handler
}

// New builds a Handler over the given children. With no children it discards
// everything.
func New(children ...slog.Handler) *Handler {
	if len(children) == 0 {
		return &Handler{
			Handler: slog.NewTextHandler(io.Discard, nil),
		}
	}

	return &Handler{
		Handler: slogmulti.
			Pipe(slogmulti.NewHandleInlineMiddleware(utcTimeMiddleware)).
			Handler(slogmulti.Fanout(children...)),
		children: children,
	}
}

// Flush flushes every child that implements Flusher. All children are
// attempted; the first error wins.
func (h *Handler) Flush() error {
	var firstErr error
	for _, child := range h.children {
		f, ok := child.(Flusher)
		if !ok {
			continue
		}
		if err := f.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func utcTimeMiddleware(ctx context.Context, record slog.Record, next func(context.Context, slog.Record) error) error {
	record.Time = record.Time.UTC()
	return next(ctx, record)
}
