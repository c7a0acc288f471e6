package reroute

import (
	"log/slog"
	"sync/atomic"
)

// backend wraps the installed handler so that every Store on the atomic.Value
// uses the same concrete type. A nil handler inside the wrapper is the empty
// state.
type backend struct {
	handler slog.Handler
}

// slot holds the currently installed backend. Reads are wait-free and never
// block on a concurrent set; sets are linearized by the atomic swap. The zero
// value is an empty slot.
type slot struct {
	v atomic.Value
}

// set installs h as the current backend (nil empties the slot) and returns
// whatever was installed before, or nil.
func (s *slot) set(h slog.Handler) slog.Handler {
	old, ok := s.v.Swap(backend{handler: h}).(backend)
	if !ok {
		return nil
	}
	return old.handler
}

// load returns the current backend, or nil when the slot is empty.
func (s *slot) load() slog.Handler {
	b, ok := s.v.Load().(backend)
	if !ok {
		return nil
	}
	return b.handler
}
