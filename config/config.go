// Package config loads runtime defaults from an optional YAML file.
//
// The file supplies defaults for values the command line leaves out (frame
// rate, render mode, decoder binaries); positional arguments always win. A
// missing file is not an error — every field has a built-in default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// File holds the configurable runtime defaults.
type File struct {
	// FPS is the default frame rate when the fps argument is absent.
	FPS int `yaml:"fps"`
	// Mode is the default render mode ("inline" or empty for in-place).
	Mode string `yaml:"mode"`
	// FFmpeg is the decoder binary name or path.
	FFmpeg string `yaml:"ffmpeg"`
	// FFprobe is the dimension-probe binary name or path.
	FFprobe string `yaml:"ffprobe"`
}

// Default returns the built-in defaults used when no file is present.
func Default() File {
	return File{
		FPS:     15,
		FFmpeg:  "ffmpeg",
		FFprobe: "ffprobe",
	}
}

// DefaultPath returns the conventional config file location, or an empty
// string when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "timg", "timg.yaml")
}

// Load reads the YAML file at path over [Default]. A missing or empty path
// yields the defaults; a present but malformed file is an error.
func Load(path string) (File, error) {
	f := Default()

	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}

	if err != nil {
		return f, fmt.Errorf("reading config: %w", err)
	}

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return f, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if f.FPS < 1 {
		return f, fmt.Errorf("parsing config %s: fps must be a positive integer, got %d", path, f.FPS)
	}

	return f, nil
}
