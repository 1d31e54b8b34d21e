package ascii

import "github.com/m1kedigital/ascii/imageutil"

// emptyAlphaThreshold is the alpha value below which a cell is treated
// as empty: it contributes a blank character and no glyph.
const emptyAlphaThreshold = 10

// cellSample is the representative pixel of one grid cell plus its
// derived brightness. Samples live only for the duration of a pass.
type cellSample struct {
	r, g, b, a uint8
	brightness float64
	empty      bool
}

// sampleCell reads the pixel nearest the geometric center of the cell
// at (row, col). Coordinates are clamped to image bounds, so cells
// whose centers round past the edge still sample a valid pixel.
func sampleCell(img *imageutil.RGBAImage, g grid, row, col int, invert bool) cellSample {
	x, y := g.cellCenter(row, col)
	x = clampInt(x, 0, img.Width()-1)
	y = clampInt(y, 0, img.Height()-1)

	c := img.GetRGBA(x, y)
	if c.A < emptyAlphaThreshold {
		return cellSample{empty: true}
	}

	s := cellSample{r: c.R, g: c.G, b: c.B, a: c.A}
	s.brightness = luminance(c.R, c.G, c.B)
	if invert {
		s.brightness = 1 - s.brightness
	}
	return s
}

// luminance computes perceptual brightness in [0,1] using Rec. 709
// coefficients.
func luminance(r, g, b uint8) float64 {
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}
