package stream

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

// Dir plays a directory of PNG frames as a raw RGBA byte stream.
//
// Frames are decoded and letterboxed up front, then served in filename
// order, paced so that frame boundaries arrive at the configured rate.
type Dir struct {
	frames   [][]byte
	interval time.Duration
	next     time.Time
	index    int
	offset   int
}

// NewDir loads all PNG files in dir (sorted by name), scales each into a
// width x height pixel box with centered black letterboxing, and returns a
// source streaming them at fps frames per second.
func NewDir(dir string, width, height, fps int) (*Dir, error) {
	names, err := pngNames(dir)
	if err != nil {
		return nil, err
	}

	frames := make([][]byte, 0, len(names))

	for _, name := range names {
		img, err := decodePNG(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}

		frames = append(frames, letterbox(img, width, height))
	}

	return &Dir{
		frames:   frames,
		interval: time.Second / time.Duration(fps),
	}, nil
}

// DirDimensions reports the pixel dimensions of the first PNG frame in dir,
// for aspect-ratio planning. ok is false when the directory holds no
// decodable PNG.
func DirDimensions(dir string) (width, height int, ok bool) {
	names, err := pngNames(dir)
	if err != nil {
		return 0, 0, false
	}

	img, err := decodePNG(filepath.Join(dir, names[0]))
	if err != nil {
		return 0, 0, false
	}

	bounds := img.Bounds()

	return bounds.Dx(), bounds.Dy(), true
}

// Read serves the current frame's bytes, pacing at each frame boundary so
// playback holds the configured rate. It returns [io.EOF] once every frame
// has been consumed.
func (d *Dir) Read(p []byte) (int, error) {
	if d.index >= len(d.frames) {
		return 0, io.EOF
	}

	if d.offset == 0 {
		d.pace()
	}

	frame := d.frames[d.index]
	n := copy(p, frame[d.offset:])
	d.offset += n

	if d.offset >= len(frame) {
		d.index++
		d.offset = 0
	}

	return n, nil
}

// Close releases the loaded frames.
func (d *Dir) Close() error {
	d.frames = nil
	d.index = 0
	d.offset = 0

	return nil
}

// pace sleeps until the next frame deadline. The deadline advances by the
// frame interval from the prior deadline, not from "now", so rendering time
// does not accumulate drift.
func (d *Dir) pace() {
	now := time.Now()

	if d.next.IsZero() || d.next.Before(now.Add(-d.interval)) {
		d.next = now
	}

	time.Sleep(d.next.Sub(now))
	d.next = d.next.Add(d.interval)
}

// pngNames lists the PNG filenames in dir, sorted.
func pngNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no PNG files found in %s", dir)
	}

	slices.Sort(names)

	return names, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing %s: %v\n", path, closeErr)
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// letterbox scales img to fit within a width x height pixel box, centered,
// preserving aspect ratio, and returns the raw RGBA bytes. Uncovered pixels
// stay zero and render as black.
func letterbox(img image.Image, width, height int) []byte {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	srcBounds := img.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	scale := float64(width) / float64(srcW)
	if scaleY := float64(height) / float64(srcH); scaleY < scale {
		scale = scaleY
	}

	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	offsetX := (width - newW) / 2
	offsetY := (height - newH) / 2

	dstRect := image.Rect(offsetX, offsetY, offsetX+newW, offsetY+newH)
	draw.ApproxBiLinear.Scale(dst, dstRect, img, srcBounds, draw.Over, nil)

	return dst.Pix
}
