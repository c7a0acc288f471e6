// Package kitlogger adapts a slog.Handler to go-kit's log.Logger interface,
// so code written against go-kit can emit through the same swappable backend
// as everything else.
package kitlogger

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

type kitLogger struct {
	handler slog.Handler
}

// New returns a go-kit log.Logger that converts each keyval list into a
// slog.Record and hands it to handler. The "level", "msg" and "ts" keys map
// onto the record itself; everything else becomes attributes.
func New(handler slog.Handler) log.Logger {
	return &kitLogger{handler: handler}
}

func (l *kitLogger) Log(keyvals ...interface{}) error {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, log.ErrMissingValue)
	}

	lvl := slog.LevelInfo
	msg := ""
	ts := time.Time{}
	attrs := make([]slog.Attr, 0, len(keyvals)/2)

	for i := 0; i < len(keyvals); i += 2 {
		k, v := keyvals[i], keyvals[i+1]

		switch {
		case k == level.Key():
			lvl = slogLevel(v)
		case k == "msg":
			msg = fmt.Sprint(v)
		case k == "ts":
			if t, ok := timestamp(v); ok {
				ts = t
				continue
			}
			attrs = append(attrs, slog.Any("ts", v))
		default:
			attrs = append(attrs, slog.Any(fmt.Sprint(k), v))
		}
	}

	if ts.IsZero() {
		ts = time.Now()
	}

	ctx := context.Background()
	if !l.handler.Enabled(ctx, lvl) {
		return nil
	}

	record := slog.NewRecord(ts, lvl, msg, 0)
	record.AddAttrs(attrs...)
	return l.handler.Handle(ctx, record)
}

// slogLevel maps a go-kit level value onto the slog scale. Anything
// unrecognized logs at info, same as a record that carried no level at all.
func slogLevel(v interface{}) slog.Level {
	switch fmt.Sprint(v) {
	case level.DebugValue().String():
		return slog.LevelDebug
	case level.InfoValue().String():
		return slog.LevelInfo
	case level.WarnValue().String():
		return slog.LevelWarn
	case level.ErrorValue().String():
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// timestamp recovers a time.Time from the value of a "ts" pair. go-kit's
// timestamp Valuers arrive either as a time.Time or as an RFC3339 stringer,
// depending on which Valuer the caller bound.
func timestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case fmt.Stringer:
		if parsed, err := time.Parse(time.RFC3339Nano, t.String()); err == nil {
			return parsed, true
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
