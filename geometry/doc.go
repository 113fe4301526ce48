// Package geometry probes terminal and media dimensions and plans the pixel
// geometry of rendered frames.
//
// A [FramePlan] fixes the exact pixel width and height requested from the
// decoder for the whole run. Two vertical pixels map onto one terminal cell
// via the half-block technique, so planned heights are always even and the
// usable pixel height of a terminal is twice its row count.
//
// Planning happens once at startup from a [TerminalSize], an optional width
// override, and optional [SourceDimensions]:
//
//	term := geometry.TermSize()
//	src := geometry.ProbeDimensions(ctx, "ffprobe", path)
//	plan := geometry.Plan(term, 0, src)
//
// When source dimensions are unknown (stdin input or probe failure), the plan
// falls back to padding: the decoder is asked to letterbox into the full
// terminal box instead of preserving the native aspect ratio.
package geometry
