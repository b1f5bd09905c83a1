// Package logging provides a small logging facade for the ecc packages.
//
// The Logger interface wraps the context-aware subset of log/slog so that
// applications can plug in their own handler, or silence the library with
// Discard:
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # Secrets
//
// Private scalars and nonces must never reach a log record. Use Redacted to
// note that a value was intentionally omitted, and BitLen when the size of a
// secret is useful for debugging:
//
//	logger.Debug(ctx, "generated key",
//	    logging.Redacted("d"),
//	    logging.BitLen("d_bits", d),
//	)
package logging
