// Package reroute provides a slog.Handler whose destination can be replaced
// at runtime.
//
// The stdlib log/slog facade is normally pointed at one handler for the life
// of the process. Installing a reroute Handler instead adds a level of
// indirection: the handler registered with slog never changes, but the
// backend it forwards to can be swapped arbitrarily often, from any
// goroutine, without blocking concurrent log calls.
//
// This is useful when the final log destination isn't known at startup, for
// example logging to stderr until a config file has been read and the real
// destination (a rotated file, a shipper) can be opened:
//
//	reroute.Init()
//	slog.Info("goes nowhere yet")
//
//	reroute.Reroute(slog.NewTextHandler(os.Stderr, nil))
//	slog.Info("goes to stderr")
//
//	fh := filehandler.New("/var/log/app/debug.json")
//	reroute.Reroute(fh)
//	slog.Info("goes to the file")
//
//	reroute.Clear()
//	slog.Info("dropped silently")
//
// With no backend installed, records are dropped and Enabled reports false,
// so the facade skips building records entirely.
package reroute
