// Command timg plays an image or video as ANSI-colored half-block characters
// in the terminal.
//
// Media is decoded to raw RGBA frames by an external ffmpeg process at a
// geometry planned from the terminal size and the source's aspect ratio.
// Each terminal cell carries two vertical pixels via foreground and
// background colors on the "▀" (upper half block) character.
//
// # Usage
//
//	timg <file|directory|-> [width] [fps] [mode]
//
// Pass "-" to read media from stdin. width is a column count overriding the
// terminal width; fps defaults to 15; mode "inline" (or "-i"/"--inline")
// appends frames as scrolling output instead of redrawing in place.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matdombrock/timg/config"
	"github.com/matdombrock/timg/display"
	"github.com/matdombrock/timg/geometry"
	"github.com/matdombrock/timg/log"
	"github.com/matdombrock/timg/playback"
	"github.com/matdombrock/timg/stream"
	"github.com/matdombrock/timg/version"
)

func main() {
	os.Exit(run0())
}

func run0() int {
	logCfg := log.NewConfig()

	var (
		cfgPath     = config.DefaultPath()
		showVersion bool
	)

	rootCmd := &cobra.Command{
		Use:   "timg <file|directory|-> [width] [fps] [mode]",
		Short: "Play an image or video as ANSI half-block art",
		Long: `timg renders an image or video file in the terminal using half-block
characters with 24-bit color escapes. Frames are decoded by ffmpeg; a
directory of PNG frames plays without it. Pass "-" to read from stdin.`,
		Args:          cobra.RangeArgs(0, 4),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())

				return nil
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			inv, err := parseArgs(args, cfg)
			if err != nil {
				return err
			}

			logger, err := logCfg.NewLogger(os.Stderr)
			if err != nil {
				return err
			}

			return run(inv, cfg, logger)
		},
	}

	logCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&cfgPath, "config", cfgPath, "config file path")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")

	// Flag parsing stops at the input path so the positional mode argument
	// may be spelled "-i" or "--inline" without being taken for a flag.
	rootCmd.Flags().SetInterspersed(false)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}

// invocation holds the parsed positional arguments, with config defaults
// applied where arguments are absent.
type invocation struct {
	input string
	mode  display.Mode
	width int // 0 = no override
	fps   int
}

// parseArgs interprets the positional arguments per the invocation contract:
// input path (or "-"), optional positive width, optional fps (forgiving:
// absent or non-numeric falls back to the default), optional mode word.
func parseArgs(args []string, cfg config.File) (invocation, error) {
	if len(args) < 1 || args[0] == "" {
		return invocation{}, fmt.Errorf("missing input path (pass \"-\" to read from stdin)")
	}

	inv := invocation{
		input: args[0],
		fps:   cfg.FPS,
		mode:  display.ParseMode(cfg.Mode),
	}

	if len(args) > 1 {
		width, err := strconv.Atoi(args[1])
		if err != nil || width < 1 {
			return invocation{}, fmt.Errorf("width must be a positive integer, got %q", args[1])
		}

		inv.width = width
	}

	if len(args) > 2 {
		fps, err := strconv.Atoi(args[2])
		if err == nil && fps > 0 {
			inv.fps = fps
		}
	}

	if len(args) > 3 {
		inv.mode = display.ParseMode(args[3])
	}

	return inv, nil
}

func run(inv invocation, cfg config.File, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdin := inv.input == stream.StdinInput

	isDir := false

	if !stdin {
		info, err := os.Stat(inv.input)
		if err != nil {
			return fmt.Errorf("input: %w", err)
		}

		isDir = info.IsDir()
	}

	// The dimension probe is never run for stdin; failure is downgraded to
	// "unknown" and handled by the padding path.
	var src *geometry.SourceDimensions

	switch {
	case stdin:
	case isDir:
		if w, h, ok := stream.DirDimensions(inv.input); ok {
			src = &geometry.SourceDimensions{Width: w, Height: h}
		}
	default:
		src = geometry.ProbeDimensions(ctx, cfg.FFprobe, inv.input)
	}

	term := geometry.TermSize()
	plan := geometry.Plan(term, inv.width, src)

	logger.Debug("planned frame geometry",
		"columns", term.Columns, "rows", term.Rows,
		"width", plan.Width, "height", plan.Height, "pad", plan.Pad)

	var (
		source io.ReadCloser
		err    error
	)

	if isDir {
		source, err = stream.NewDir(inv.input, plan.Width, plan.Height, inv.fps)
	} else {
		source, err = stream.NewFFmpeg(ctx, stream.Options{
			Input:    inv.input,
			Stdin:    os.Stdin,
			Width:    plan.Width,
			Height:   plan.Height,
			FPS:      inv.fps,
			Pad:      plan.Pad,
			Realtime: !stdin,
			Binary:   cfg.FFmpeg,
		})
	}

	if err != nil {
		// An interrupt during launch is not a failure.
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "playback interrupted")

			return nil
		}

		return err
	}

	ctrl := display.NewController(os.Stdout, inv.mode)
	res := playback.New(source, ctrl, plan.Width, plan.Height, logger).Run(ctx)

	switch res.Status {
	case playback.StatusFatal:
		return res.Err

	case playback.StatusAborted:
		fmt.Fprintln(os.Stderr, "playback interrupted")

		return nil
	}

	fmt.Fprintf(os.Stderr, "played %d frames at %dx%d px in a %dx%d terminal (fps=%d override=%d pad=%t mode=%s)\n",
		res.Frames, plan.Width, plan.Height, term.Columns, term.Rows,
		inv.fps, inv.width, plan.Pad, inv.mode)

	return nil
}
