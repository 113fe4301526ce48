// Package display owns the terminal during playback: it writes rendered
// frame lines in either in-place or inline mode and restores the terminal's
// cursor and attributes afterwards.
package display

import (
	"fmt"
	"io"
	"strings"
)

// Terminal control sequences used for frame output.
const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	sgrReset   = "\x1b[0m"
	eraseLine  = "\x1b[2K"
	column1    = "\x1b[G"
)

func cursorUp(n int) string {
	return fmt.Sprintf("\x1b[%dA", n)
}

// Mode selects how successive frames are written to the terminal.
type Mode int

const (
	// ModeInPlace redraws frames over the previous block by moving the
	// cursor back up, producing flicker-free playback without clearing the
	// screen. This is the default.
	ModeInPlace Mode = iota
	// ModeInline appends every frame as a fresh block, scrolling the
	// terminal like ordinary output.
	ModeInline
)

// ParseMode interprets a mode argument. "-i", "--inline", and "inline"
// (case-insensitive) select [ModeInline]; anything else, including the empty
// string, selects [ModeInPlace].
func ParseMode(s string) Mode {
	switch strings.ToLower(s) {
	case "-i", "--inline", "inline":
		return ModeInline
	}

	return ModeInPlace
}

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeInline {
		return "inline"
	}

	return "in-place"
}

// State carries the cursor bookkeeping between frames. It transitions
// exactly once, from first-frame to steady, after the first write.
type State struct {
	// First reports that no frame has been written yet.
	First bool
	// Lines is the line count of the previously written block.
	Lines int
}

// NewState returns the state for a run that has not written any frame.
func NewState() State {
	return State{First: true}
}

// Controller writes rendered frames to a terminal writer. It holds no
// per-frame state; callers thread a [State] through successive
// [Controller.WriteFrame] calls.
type Controller struct {
	w    io.Writer
	mode Mode
}

// NewController returns a Controller writing to w in the given mode.
func NewController(w io.Writer, mode Mode) *Controller {
	return &Controller{w: w, mode: mode}
}

// WriteFrame writes one rendered frame and returns the updated state.
//
// In in-place mode the first frame hides the cursor and prints the whole
// block; every later frame moves the cursor up over the previous block and
// rewrites each line in place. In both modes the cursor ends on the line
// just below the block. Each frame is assembled into a single buffer and
// written with one call so partial frames never reach the terminal.
func (c *Controller) WriteFrame(st State, lines []string) (State, error) {
	var sb strings.Builder

	switch {
	case c.mode == ModeInline:
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteByte('\n')

	case st.First:
		sb.WriteString(hideCursor)
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteByte('\n')

	default:
		sb.WriteString(cursorUp(st.Lines))

		for i, line := range lines {
			sb.WriteString(column1)
			sb.WriteString(eraseLine)
			sb.WriteString(line)

			if i < len(lines)-1 {
				sb.WriteByte('\n')
			}
		}

		sb.WriteByte('\n')
	}

	_, err := io.WriteString(c.w, sb.String())
	if err != nil {
		return st, fmt.Errorf("writing frame: %w", err)
	}

	return State{First: false, Lines: len(lines)}, nil
}

// Restore resets terminal attributes, moves to a fresh line, and reveals the
// cursor. It must run on every exit path so a crash never leaves the
// terminal colored or with a hidden cursor.
func (c *Controller) Restore() error {
	_, err := io.WriteString(c.w, sgrReset+"\n"+showCursor)
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}

	return nil
}
