package reroute

import (
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrAlreadyInitialized is returned by Init when the default Handler has
// already been registered with slog in this process.
var ErrAlreadyInitialized = errors.New("reroute: already initialized")

var (
	defaultHandler = New()
	initialized    atomic.Bool
)

// Default returns the process-wide Handler that Init registers with slog. It
// can be used directly, e.g. to build a slog.Logger around it without
// touching slog's default.
func Default() *Handler {
	return defaultHandler
}

// Init registers the default Handler as slog's default logger. Call it once,
// early; a second call returns ErrAlreadyInitialized and leaves both the
// registration and the current backend untouched.
//
// Until Reroute is called the default Handler has no backend, so everything
// logged through slog is dropped.
func Init() error {
	if !initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	slog.SetDefault(slog.New(defaultHandler))
	return nil
}

// Reroute installs handler as the backend of the default Handler.
func Reroute(handler slog.Handler) {
	defaultHandler.Reroute(handler)
}

// Clear removes the default Handler's backend; records are dropped silently
// until the next Reroute.
func Clear() {
	defaultHandler.Clear()
}

// Flush flushes the default Handler's current backend, if it has one and it
// implements Flusher.
func Flush() error {
	return defaultHandler.Flush()
}
