package reroute

import (
	"context"
	"log/slog"
)

// Flusher is the optional flushing capability of a backend. slog.Handler has
// no flush method, so handlers that buffer should implement Flusher to have
// Flush calls (and the flush that follows a swap) reach them.
type Flusher interface {
	Flush() error
}

// derivation records one WithAttrs or WithGroup call so it can be replayed
// onto whichever backend is current when a record arrives. An empty group
// means attrs.
type derivation struct {
	group string
	attrs []slog.Attr
}

// Handler is a slog.Handler that forwards every call to the backend currently
// installed in its slot. The backend can be replaced at any time with Reroute
// or removed with Clear; log calls in flight keep the backend they snapshotted
// and are never blocked by a swap.
//
// Handlers derived via WithAttrs or WithGroup share the slot, so they follow
// later reroutes too.
//
// The zero value is not usable; call New.
type Handler struct {
	slot    *slot
	derives []derivation
}

var _ slog.Handler = (*Handler)(nil)
var _ Flusher = (*Handler)(nil)

// New creates a Handler with no backend. Until Reroute is called, all records
// are dropped.
func New() *Handler {
	return &Handler{slot: new(slot)}
}

// Reroute installs handler as the backend for all subsequent log calls,
// including calls through handlers derived from this one. The superseded
// backend, if any, is flushed after the swap.
func (h *Handler) Reroute(handler slog.Handler) {
	if old, ok := h.slot.set(handler).(Flusher); ok {
		old.Flush() //nolint:errcheck // nowhere to report it
	}
}

// Clear removes the backend. Subsequent records are dropped silently until
// the next Reroute. The removed backend is flushed like on any other swap.
func (h *Handler) Clear() {
	h.Reroute(nil)
}

// current snapshots the backend and replays any recorded WithAttrs/WithGroup
// derivations onto it. Returns nil when the slot is empty.
func (h *Handler) current() slog.Handler {
	backend := h.slot.load()
	if backend == nil {
		return nil
	}
	for _, d := range h.derives {
		if d.group != "" {
			backend = backend.WithGroup(d.group)
		} else {
			backend = backend.WithAttrs(d.attrs)
		}
	}
	return backend
}

// Enabled reports whether the current backend would handle a record at the
// given level. With no backend installed nothing is enabled, which lets the
// facade skip building the record at all.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	backend := h.current()
	if backend == nil {
		return false
	}
	return backend.Enabled(ctx, level)
}

// Handle forwards the record to the current backend, unchanged. The backend
// is snapshotted once, so a swap happening mid-call either takes this record
// or misses it, never both. With no backend the record is dropped.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	backend := h.current()
	if backend == nil {
		return nil
	}
	return backend.Handle(ctx, record)
}

// WithAttrs returns a Handler that adds attrs to every record, applied to
// whatever backend is current at call time. The returned Handler shares this
// one's slot.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.derive(derivation{attrs: attrs})
}

// WithGroup returns a Handler that opens the named group on every record,
// applied to whatever backend is current at call time. The returned Handler
// shares this one's slot.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.derive(derivation{group: name})
}

func (h *Handler) derive(d derivation) *Handler {
	derives := make([]derivation, len(h.derives), len(h.derives)+1)
	copy(derives, h.derives)

	return &Handler{
		slot:    h.slot,
		derives: append(derives, d),
	}
}

// Flush flushes the current backend if it implements Flusher; otherwise it's
// a no-op.
func (h *Handler) Flush() error {
	if backend, ok := h.slot.load().(Flusher); ok {
		return backend.Flush()
	}
	return nil
}
