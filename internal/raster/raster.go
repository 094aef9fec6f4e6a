// Package raster draws projected lines into an image for headless snapshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"flightview/geom"
	"flightview/internal/render"
)

// maxCoord bounds the endpoints DrawSegment accepts. Cone clipping can leave
// points well outside the screen, but never this far.
const maxCoord = 1 << 20

// NewImage returns a w by h image filled with bg.
func NewImage(w, h int, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return img
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA
// walk along the longer axis. Pixels off the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := float64(x1)
	y := float64(y1)

	b := img.Bounds()
	for i := 0; i <= int(steps); i++ {
		p := image.Pt(int(math.Round(x)), int(math.Round(y)))
		if p.In(b) {
			offset := img.PixOffset(p.X, p.Y)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}

// DrawSegment draws a screen-space segment. It reports false and draws nothing
// when an endpoint is not finite or absurdly far off screen.
func DrawSegment(img *image.RGBA, a, b geom.Vec2, col color.RGBA) bool {
	for _, v := range []float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.Abs(v) > maxCoord {
			return false
		}
	}
	DrawLine(img, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), col)
	return true
}

// Draw renders a frame's output. It returns the number of segments skipped.
func Draw(img *image.RGBA, out render.Output) int {
	skipped := 0
	for _, d := range out.Objects {
		for _, s := range d.Segments {
			if !DrawSegment(img, s[0], s[1], d.Colour) {
				skipped++
			}
		}
	}
	return skipped
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
