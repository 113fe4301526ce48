package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"
	// FormatLogfmt outputs logfmt key=value pairs.
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
)

var (
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandler creates a [slog.Handler] writing to w from level and format
// strings.
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	case FormatText, FormatLogfmt:
		return slog.NewTextHandler(w, opts), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// ParseLevel parses a log level string into a [slog.Level].
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}
