// Package ascii converts raster images into grids of printable
// characters whose local brightness, and optionally color, approximates
// the source. One render pass produces two synchronized artifacts: a
// styled glyph bitmap and a plain-text transcript.
//
// The pipeline partitions the working image into a character grid,
// samples one representative pixel per cell, maps its luminance onto an
// ordered character ramp, and feeds the selected rune to both the glyph
// painter and the transcript row under construction. Everything is
// recomputed from scratch on every pass; nothing is shared between
// passes.
package ascii

import (
	"image"
	"image/color"
	"strings"

	"github.com/m1kedigital/ascii/imageutil"
)

// renderPass runs the whole pipeline over one consistent snapshot:
// downscale cap, grid planning, then a single per-cell loop that feeds
// both the bitmap and the transcript from the same mapper invocation.
func renderPass(src image.Image, s Settings) (*Output, error) {
	img := imageutil.FromImage(src)
	if img.Width() < 1 || img.Height() < 1 {
		return nil, ErrNoImage
	}
	if img.Width() > maxWorkingWidth {
		img = imageutil.ResizeToWidth(img, maxWorkingWidth, imageutil.InterpolationArea)
	}

	g := planGrid(img.Width(), img.Height(), s.Density)

	bitmap := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	fillBackground(bitmap, s.Background)

	painter := newGlyphPainter(s)
	ramp := []rune(s.Charset)
	mono := contrastInk(s.Background)

	rows := make([]string, g.rows)
	var line strings.Builder
	for row := 0; row < g.rows; row++ {
		line.Reset()
		for col := 0; col < g.columns; col++ {
			cell := sampleCell(img, g, row, col, s.Invert)
			if cell.empty {
				line.WriteRune(' ')
				continue
			}

			ch := mapChar(cell.brightness, ramp)
			line.WriteRune(ch)

			ink := mono
			if s.Colored {
				ink = color.RGBA{R: cell.r, G: cell.g, B: cell.b, A: 0xff}
			}
			x, y := g.cellOrigin(row, col)
			painter.drawGlyph(bitmap, x, y, ch, ink)
		}
		rows[row] = line.String()
	}

	return &Output{Bitmap: bitmap, Rows: rows}, nil
}
