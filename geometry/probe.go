package geometry

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Fallback size used when every terminal query fails.
const (
	fallbackColumns = 80
	fallbackRows    = 24
)

// TermSize queries the terminal dimensions, trying stdout, stderr, and stdin
// in turn, then the COLUMNS/LINES environment variables. It falls back to
// 80x24 when every query fails, so it always returns a usable size.
func TermSize() TerminalSize {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		cols, rows, err := term.GetSize(int(f.Fd()))
		if err == nil && cols > 0 && rows > 0 {
			return TerminalSize{Columns: cols, Rows: rows}
		}
	}

	cols, colsErr := strconv.Atoi(os.Getenv("COLUMNS"))
	rows, rowsErr := strconv.Atoi(os.Getenv("LINES"))

	if colsErr == nil && rowsErr == nil && cols > 0 && rows > 0 {
		return TerminalSize{Columns: cols, Rows: rows}
	}

	return TerminalSize{Columns: fallbackColumns, Rows: fallbackRows}
}

// ProbeDimensions asks ffprobe for the pixel dimensions of the first video
// stream in the file at path. Any failure (missing binary, probe error,
// malformed output) returns nil, meaning "unknown"; probing is best-effort
// and never fatal.
func ProbeDimensions(ctx context.Context, ffprobe, path string) *SourceDimensions {
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}

	//nolint:gosec // path is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(
		ctx,
		ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	return parseProbeOutput(string(out))
}

// parseProbeOutput parses ffprobe's "WIDTHxHEIGHT" csv line. Anything that
// does not yield two positive integers is treated as unknown.
func parseProbeOutput(out string) *SourceDimensions {
	fields := strings.Split(strings.TrimSpace(out), "x")
	if len(fields) != 2 {
		return nil
	}

	width, widthErr := strconv.Atoi(strings.TrimSpace(fields[0]))
	height, heightErr := strconv.Atoi(strings.TrimSpace(fields[1]))

	if widthErr != nil || heightErr != nil || width < 1 || height < 1 {
		return nil
	}

	return &SourceDimensions{Width: width, Height: height}
}
