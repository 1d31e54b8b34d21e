package ascii

import (
	"image"
	"image/png"
	"io"
	"strings"
)

// Output holds the two artifacts of one render pass. Both derive from
// the same per-cell character choices, so the transcript matches the
// bitmap cell for cell.
type Output struct {
	// Bitmap is the rendered glyph image, sized to the working image.
	Bitmap *image.RGBA

	// Rows are the transcript lines, one per grid row.
	Rows []string
}

// Text joins the transcript rows with single line breaks, no trailing
// separator.
func (o *Output) Text() string {
	return strings.Join(o.Rows, "\n")
}

// EncodePNG writes the bitmap to w as a lossless PNG.
func (o *Output) EncodePNG(w io.Writer) error {
	return png.Encode(w, o.Bitmap)
}
