package geometry

import "math"

// TerminalSize holds the terminal dimensions in character cells.
// It is captured once at startup and never re-queried mid-run.
type TerminalSize struct {
	Columns int
	Rows    int
}

// SourceDimensions holds the native pixel dimensions of the input media.
// A nil *SourceDimensions means the dimensions are unknown.
type SourceDimensions struct {
	Width  int
	Height int
}

// FramePlan fixes the pixel geometry of every frame for one run.
//
// Width and Height are the exact dimensions requested from the decoder;
// Height is always even. Pad reports whether the decoder should letterbox
// the source into the planned box with black padding instead of rescaling
// to it directly.
type FramePlan struct {
	Width  int
	Height int
	Pad    bool
}

// FrameBytes returns the byte length of one raw RGBA frame at this plan.
func (p FramePlan) FrameBytes() int {
	return p.Width * p.Height * 4
}

// Lines returns the number of terminal lines one frame renders to.
func (p FramePlan) Lines() int {
	return p.Height / 2
}

// Plan computes the frame geometry for a run.
//
// widthOverride is an explicit column count from the user, or 0 when absent.
// An explicit override is authoritative: the derived height is never shrunk
// to fit the terminal, even if the result scrolls past the visible rows.
//
// Without an override, the plan starts from the full terminal width and caps
// the height at Rows*2 pixels, recomputing the width from the height cap
// (and clamping it to the terminal columns) when the source is too tall.
//
// With unknown source dimensions the plan covers the whole terminal box and
// sets Pad, delegating aspect handling to the decoder's letterbox filter.
func Plan(term TerminalSize, widthOverride int, src *SourceDimensions) FramePlan {
	var plan FramePlan

	switch {
	case src == nil:
		plan.Pad = true
		plan.Width = term.Columns

		if widthOverride > 0 {
			plan.Width = widthOverride
		}

		plan.Height = term.Rows * 2

	case widthOverride > 0:
		plan.Width = widthOverride
		plan.Height = evenUp(scaleHeight(src, plan.Width))

	default:
		plan.Width = term.Columns
		plan.Height = evenUp(scaleHeight(src, plan.Width))

		if maxHeight := term.Rows * 2; plan.Height > maxHeight {
			plan.Height = maxHeight
			plan.Width = scaleWidth(src, plan.Height)

			if plan.Width > term.Columns {
				plan.Width = term.Columns
			}
		}
	}

	if plan.Width < 1 {
		plan.Width = 1
	}

	if plan.Height < 2 {
		plan.Height = 2
	}

	plan.Height = evenUp(plan.Height)

	return plan
}

func scaleHeight(src *SourceDimensions, width int) int {
	return roundHalfUp(float64(src.Height) * float64(width) / float64(src.Width))
}

func scaleWidth(src *SourceDimensions, height int) int {
	return roundHalfUp(float64(src.Width) * float64(height) / float64(src.Height))
}

// roundHalfUp rounds to the nearest integer with ties going up, matching the
// floor(x+0.5) contract rather than Go's round-half-away or round-half-even.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// evenUp rounds n up to the next even value.
func evenUp(n int) int {
	if n%2 != 0 {
		return n + 1
	}

	return n
}
