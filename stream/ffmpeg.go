package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ErrLaunch indicates the decoder process could not be started.
var ErrLaunch = errors.New("launching pixel source")

// StdinInput is the input argument that reads media from standard input.
const StdinInput = "-"

// Options configure the external decoder process.
type Options struct {
	// Input is a media file path, or [StdinInput] to decode from Stdin.
	Input string
	// Stdin feeds the decoder when Input is [StdinInput].
	Stdin io.Reader
	// Width and Height are the exact pixel geometry of every output frame.
	Width  int
	Height int
	// FPS is the output frame rate.
	FPS int
	// Pad letterboxes the source into the output box with black padding
	// instead of rescaling it directly. Used when the source dimensions are
	// unknown and the aspect ratio cannot be planned up front.
	Pad bool
	// Realtime asks the decoder to pace output at the source's native rate.
	// Requested for file inputs but not for stdin.
	Realtime bool
	// Binary is the ffmpeg executable name; empty means "ffmpeg".
	Binary string
}

// FFmpeg streams raw RGBA frames from an ffmpeg process's stdout pipe.
type FFmpeg struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	cancel context.CancelFunc
}

// NewFFmpeg starts ffmpeg decoding per opts and returns a source reading its
// rawvideo stdout. The process is bound to ctx, so canceling ctx kills the
// decoder and unblocks any pending read. Failure to locate or start the
// binary wraps [ErrLaunch].
func NewFFmpeg(ctx context.Context, opts Options) (*FFmpeg, error) {
	bin := opts.Binary
	if bin == "" {
		bin = "ffmpeg"
	}

	_, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not found in PATH: install ffmpeg or play a directory of PNG frames instead", ErrLaunch, bin)
	}

	ctx, cancel := context.WithCancel(ctx)

	//nolint:gosec // The input path and geometry are user-provided CLI arguments, not untrusted input.
	cmd := exec.CommandContext(ctx, bin, ffmpegArgs(opts)...)

	if opts.Input == StdinInput {
		cmd.Stdin = opts.Stdin
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("%w: creating stdout pipe: %w", ErrLaunch, err)
	}

	err = cmd.Start()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("%w: starting %s: %w", ErrLaunch, bin, err)
	}

	return &FFmpeg{
		cmd:    cmd,
		stdout: stdout,
		cancel: cancel,
	}, nil
}

// ffmpegArgs builds the decoder argument list: rawvideo RGBA frames on
// stdout at the planned geometry, either plainly rescaled or letterboxed
// into the box with centered black padding.
func ffmpegArgs(opts Options) []string {
	args := []string{"-v", "error"}

	if opts.Realtime {
		args = append(args, "-re")
	}

	input := opts.Input
	if input == StdinInput {
		input = "pipe:0"
	}

	vf := fmt.Sprintf("fps=%d,scale=%d:%d", opts.FPS, opts.Width, opts.Height)
	if opts.Pad {
		vf = fmt.Sprintf(
			"fps=%d,scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:black",
			opts.FPS, opts.Width, opts.Height, opts.Width, opts.Height,
		)
	}

	return append(args,
		"-i", input,
		"-vf", vf,
		"-pix_fmt", "rgba",
		"-f", "rawvideo",
		"pipe:1",
	)
}

// Read reads raw frame bytes from the decoder pipe.
func (f *FFmpeg) Read(p []byte) (int, error) {
	return f.stdout.Read(p)
}

// Close cancels the decoder process and waits for it to exit.
func (f *FFmpeg) Close() error {
	f.cancel()
	//nolint:errcheck // Exit error is expected after context cancellation.
	f.cmd.Wait()

	return nil
}
