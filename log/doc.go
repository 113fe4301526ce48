// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports [FormatText], [FormatLogfmt], and [FormatJSON] output and the
// usual severity levels. Diagnostics go to a caller-chosen writer (stderr in
// practice) so frame output on stdout is never polluted.
//
// Typical usage registers flags on a command, then builds a logger at
// startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	slog.SetDefault(logger)
package log
