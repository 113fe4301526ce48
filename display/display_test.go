package display_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matdombrock/timg/display"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  display.Mode
	}{
		"short flag":            {input: "-i", want: display.ModeInline},
		"long flag":             {input: "--inline", want: display.ModeInline},
		"bare word":             {input: "inline", want: display.ModeInline},
		"case insensitive":      {input: "INLINE", want: display.ModeInline},
		"mixed case flag":       {input: "--Inline", want: display.ModeInline},
		"empty defaults":        {input: "", want: display.ModeInPlace},
		"unknown word defaults": {input: "fast", want: display.ModeInPlace},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, display.ParseMode(tc.input))
		})
	}
}

func TestWriteFrameInPlace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctrl := display.NewController(&buf, display.ModeInPlace)

	st, err := ctrl.WriteFrame(display.NewState(), []string{"aaa", "bbb"})
	require.NoError(t, err)
	assert.Equal(t, display.State{First: false, Lines: 2}, st)
	assert.Equal(t, "\x1b[?25laaa\nbbb\n", buf.String())

	buf.Reset()

	st, err = ctrl.WriteFrame(st, []string{"ccc", "ddd"})
	require.NoError(t, err)
	assert.Equal(t, display.State{First: false, Lines: 2}, st)
	assert.Equal(t, "\x1b[2A\x1b[G\x1b[2Kccc\n\x1b[G\x1b[2Kddd\n", buf.String())
}

func TestWriteFrameInline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctrl := display.NewController(&buf, display.ModeInline)
	st := display.NewState()

	var err error

	for i := 0; i < 2; i++ {
		st, err = ctrl.WriteFrame(st, []string{"aaa", "bbb"})
		require.NoError(t, err)
	}

	// No cursor movement or hiding, just scrolling blocks.
	assert.Equal(t, "aaa\nbbb\naaa\nbbb\n", buf.String())
}

func TestRestore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctrl := display.NewController(&buf, display.ModeInPlace)

	require.NoError(t, ctrl.Restore())
	assert.Equal(t, "\x1b[0m\n\x1b[?25h", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestWriteFrameError(t *testing.T) {
	t.Parallel()

	ctrl := display.NewController(failWriter{}, display.ModeInPlace)

	st := display.NewState()

	got, err := ctrl.WriteFrame(st, []string{"aaa"})
	require.Error(t, err)
	assert.Equal(t, st, got, "state must not advance on a failed write")
}
