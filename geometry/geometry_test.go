package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matdombrock/timg/geometry"
)

func TestPlan(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		term     geometry.TerminalSize
		override int
		src      *geometry.SourceDimensions
		want     geometry.FramePlan
	}{
		"known dims fit terminal width": {
			term: geometry.TerminalSize{Columns: 100, Rows: 40},
			src:  &geometry.SourceDimensions{Width: 1920, Height: 1080},
			want: geometry.FramePlan{Width: 100, Height: 56},
		},
		"override preserves aspect": {
			term:     geometry.TerminalSize{Columns: 200, Rows: 50},
			override: 80,
			src:      &geometry.SourceDimensions{Width: 640, Height: 480},
			want:     geometry.FramePlan{Width: 80, Height: 60},
		},
		"override never shrunk to fit rows": {
			term:     geometry.TerminalSize{Columns: 200, Rows: 8},
			override: 80,
			src:      &geometry.SourceDimensions{Width: 640, Height: 480},
			want:     geometry.FramePlan{Width: 80, Height: 60},
		},
		"too tall recomputes width from height cap": {
			term: geometry.TerminalSize{Columns: 100, Rows: 40},
			src:  &geometry.SourceDimensions{Width: 1000, Height: 3000},
			want: geometry.FramePlan{Width: 27, Height: 80},
		},
		"tall source in tiny terminal": {
			term: geometry.TerminalSize{Columns: 5, Rows: 2},
			src:  &geometry.SourceDimensions{Width: 10, Height: 30},
			want: geometry.FramePlan{Width: 1, Height: 4},
		},
		"odd height rounded up to even": {
			term:     geometry.TerminalSize{Columns: 200, Rows: 50},
			override: 10,
			src:      &geometry.SourceDimensions{Width: 100, Height: 31},
			want:     geometry.FramePlan{Width: 10, Height: 4},
		},
		"half values round up": {
			term:     geometry.TerminalSize{Columns: 200, Rows: 50},
			override: 10,
			src:      &geometry.SourceDimensions{Width: 100, Height: 45},
			want:     geometry.FramePlan{Width: 10, Height: 6},
		},
		"tiny source keeps minimum height": {
			term: geometry.TerminalSize{Columns: 80, Rows: 24},
			src:  &geometry.SourceDimensions{Width: 1000, Height: 1},
			want: geometry.FramePlan{Width: 80, Height: 2},
		},
		"unknown dims pad to terminal box": {
			term: geometry.TerminalSize{Columns: 80, Rows: 24},
			want: geometry.FramePlan{Width: 80, Height: 48, Pad: true},
		},
		"unknown dims keep width override": {
			term:     geometry.TerminalSize{Columns: 80, Rows: 24},
			override: 100,
			want:     geometry.FramePlan{Width: 100, Height: 48, Pad: true},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := geometry.Plan(tc.term, tc.override, tc.src)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanInvariants(t *testing.T) {
	t.Parallel()

	terms := []geometry.TerminalSize{
		{Columns: 80, Rows: 24},
		{Columns: 100, Rows: 40},
		{Columns: 5, Rows: 3},
		{Columns: 1, Rows: 1},
	}
	srcs := []*geometry.SourceDimensions{
		nil,
		{Width: 1920, Height: 1080},
		{Width: 1, Height: 5000},
		{Width: 5000, Height: 1},
		{Width: 33, Height: 77},
	}

	for _, term := range terms {
		for _, src := range srcs {
			for _, override := range []int{0, 1, 7, 80, 500} {
				plan := geometry.Plan(term, override, src)

				require.GreaterOrEqual(t, plan.Width, 1)
				require.GreaterOrEqual(t, plan.Height, 2)
				require.Zero(t, plan.Height%2, "height must be even: %+v", plan)

				if override > 0 && src != nil {
					require.Equal(t, override, plan.Width,
						"explicit width override must be authoritative")
				}

				if src != nil && override == 0 {
					require.LessOrEqual(t, plan.Width, term.Columns)
					require.LessOrEqual(t, plan.Height, max(term.Rows*2, 2))
				}
			}
		}
	}
}

func TestFramePlanSizes(t *testing.T) {
	t.Parallel()

	plan := geometry.FramePlan{Width: 80, Height: 48}

	assert.Equal(t, 80*48*4, plan.FrameBytes())
	assert.Equal(t, 24, plan.Lines())
}
