package log

import (
	"io"
	"log/slog"

	"github.com/spf13/pflag"
)

// Config holds CLI flag values for log configuration.
type Config struct {
	Level  string
	Format string
}

// NewConfig returns a new [Config] with playback-friendly defaults: warnings
// only, so diagnostics never interleave with frame pacing unless asked for.
func NewConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: string(FormatText),
	}
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, "log-level", c.Level,
		"log level, one of: error, warn, info, debug")
	flags.StringVar(&c.Format, "log-format", c.Format,
		"log format, one of: text, logfmt, json")
}

// NewLogger creates a [*slog.Logger] writing to w using the configured level
// and format.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	handler, err := NewHandler(w, c.Level, c.Format)
	if err != nil {
		return nil, err
	}

	return slog.New(handler), nil
}
