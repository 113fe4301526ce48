// Package playback drives the read/render/write loop for one run.
//
// The [Supervisor] blocks on fixed-size frame reads from the pixel source
// and renders strictly between reads: single-threaded, no decode/render
// overlap. Every exit path — end of stream, interruption, failure — runs the
// terminal restore and source close exactly once before the [Result] is
// returned.
package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/matdombrock/timg/display"
	"github.com/matdombrock/timg/render"
)

var (
	// ErrStreamRead indicates a non-interrupt failure reading frame bytes.
	ErrStreamRead = errors.New("reading frame stream")
	// ErrRender indicates a non-interrupt failure rendering or writing a
	// frame.
	ErrRender = errors.New("rendering frame")
)

// Status is the terminal state of a playback run.
type Status int

const (
	// StatusEndOfStream means the source was exhausted normally. A short
	// read, including zero bytes, is the expected termination for finite
	// input, never an error.
	StatusEndOfStream Status = iota
	// StatusAborted means the user interrupted playback. This is expected
	// behavior, not a failure.
	StatusAborted
	// StatusFatal means an unclassified read or render error ended the run.
	StatusFatal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusEndOfStream:
		return "end of stream"
	case StatusAborted:
		return "aborted"
	case StatusFatal:
		return "fatal"
	}

	return "unknown"
}

// Result reports how a run ended and how many frames it rendered. Err is
// non-nil only for [StatusFatal].
type Result struct {
	Status Status
	Frames int
	Err    error
}

// Supervisor owns one playback run over a frame source and a display
// controller.
type Supervisor struct {
	source  io.ReadCloser
	ctrl    *display.Controller
	logger  *slog.Logger
	width   int
	height  int
	cleanup sync.Once
}

// New returns a Supervisor reading width x height RGBA frames from source
// and writing them through ctrl. A nil logger falls back to [slog.Default].
func New(source io.ReadCloser, ctrl *display.Controller, width, height int, logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Supervisor{
		source: source,
		ctrl:   ctrl,
		logger: logger,
		width:  width,
		height: height,
	}
}

// Run executes the frame loop until the source ends, ctx is canceled, or an
// error occurs. Cancellation is checked before every blocking read and used
// to classify errors surfacing from an interrupted read, so an interrupt
// always resolves to [StatusAborted] with the terminal restored.
func (s *Supervisor) Run(ctx context.Context) Result {
	defer s.restore()

	buf := make([]byte, s.width*s.height*4)
	st := display.NewState()
	frames := 0

	for {
		if ctx.Err() != nil {
			return Result{Status: StatusAborted, Frames: frames}
		}

		_, err := io.ReadFull(s.source, buf)

		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			// A killed decoder closes the pipe; report an interrupt as an
			// abort rather than a normal end of stream.
			if ctx.Err() != nil {
				return Result{Status: StatusAborted, Frames: frames}
			}

			return Result{Status: StatusEndOfStream, Frames: frames}

		case err != nil:
			if interrupted(ctx, err) {
				return Result{Status: StatusAborted, Frames: frames}
			}

			return Result{
				Status: StatusFatal,
				Frames: frames,
				Err:    fmt.Errorf("%w: %w", ErrStreamRead, err),
			}
		}

		st, err = s.ctrl.WriteFrame(st, render.Lines(buf, s.width, s.height))
		if err != nil {
			if interrupted(ctx, err) {
				return Result{Status: StatusAborted, Frames: frames}
			}

			return Result{
				Status: StatusFatal,
				Frames: frames,
				Err:    fmt.Errorf("%w: %w", ErrRender, err),
			}
		}

		frames++
	}
}

// restore runs the terminal restore and source close exactly once,
// regardless of how the loop exited.
func (s *Supervisor) restore() {
	s.cleanup.Do(func() {
		err := s.ctrl.Restore()
		if err != nil {
			s.logger.Warn("restoring terminal state", "err", err)
		}

		err = s.source.Close()
		if err != nil {
			s.logger.Debug("closing pixel source", "err", err)
		}
	})
}

// interrupted classifies an error from a blocking read or write as a user
// interruption. Context cancellation is authoritative; the text signature
// match covers wrapped process errors that only carry the interrupt in
// their message.
func interrupted(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "interrupt") || strings.Contains(msg, "c-c")
}
