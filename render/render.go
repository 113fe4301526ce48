// Package render converts raw RGBA frame buffers into ANSI-colored
// half-block text lines.
//
// Each output line represents two pixel rows: the top pixel becomes the
// foreground color and the bottom pixel the background color of a "▀"
// (upper half block) character, giving square-ish pixels at twice the
// vertical resolution of plain character cells.
package render

import (
	"fmt"
	"strings"
)

// Pixels with an alpha below this threshold render as opaque black; alpha is
// otherwise ignored. This is a hard cutoff, not a blend.
const alphaThreshold = 10

const (
	halfBlock = "▀"
	sgrReset  = "\x1b[0m"
)

// Lines renders one raw RGBA frame into height/2 terminal lines.
//
// The frame is row-major with 4 bytes per pixel in R,G,B,A order; the byte
// index of pixel (x,y) is (y*width+x)*4. Bytes missing from a short buffer
// are substituted with opaque black rather than failing, since the buffer
// crosses a trust boundary with the external decoder. Each line carries its
// own color escapes and ends with an attribute reset.
func Lines(frame []byte, width, height int) []string {
	lines := make([]string, 0, height/2)

	var sb strings.Builder

	for y := 0; y < height-1; y += 2 {
		sb.Reset()
		sb.Grow(width * 40)

		for x := 0; x < width; x++ {
			tr, tg, tb := pixelAt(frame, width, x, y)
			br, bg, bb := pixelAt(frame, width, x, y+1)

			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", tr, tg, tb, br, bg, bb, halfBlock)
		}

		sb.WriteString(sgrReset)
		lines = append(lines, sb.String())
	}

	return lines
}

// pixelAt returns the RGB channels of pixel (x,y), applying the alpha
// threshold. Out-of-range reads yield opaque black.
func pixelAt(frame []byte, width, x, y int) (r, g, b byte) {
	idx := (y*width + x) * 4
	if idx < 0 || idx+3 >= len(frame) {
		return 0, 0, 0
	}

	if frame[idx+3] < alphaThreshold {
		return 0, 0, 0
	}

	return frame[idx], frame[idx+1], frame[idx+2]
}
