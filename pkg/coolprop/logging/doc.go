// Package logging provides a minimal logging facade for the coolprop
// wrapper.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is intentionally small so applications can supply custom
// implementations for testing or for integration with existing logging
// systems.
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
// The library itself logs through coolprop.SetLogger and stays silent by
// default (logging.Nop).
package logging
