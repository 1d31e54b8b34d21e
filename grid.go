package ascii

import "math"

const (
	// maxWorkingWidth caps the working image width. Larger sources are
	// downscaled (preserving aspect ratio) before the grid is planned,
	// bounding per-pass memory and compute.
	maxWorkingWidth = 1400

	// cellAspect is the cell height / cell width ratio. Monospace
	// glyphs are taller than wide; 1.8 is an empirical correction that
	// makes a character cell cover a visually square image region.
	cellAspect = 1.8
)

// grid describes how the working image is partitioned into character
// cells. Cell dimensions are real-valued; pixel origins are floored at
// draw time.
type grid struct {
	columns    int
	rows       int
	cellWidth  float64
	cellHeight float64
}

// planGrid partitions an image of the given working dimensions into a
// character grid. columns equals the clamped density; rows follows from
// the aspect-corrected cell height. Any image with nonzero size yields
// at least one row and one column.
func planGrid(width, height, density int) grid {
	g := grid{columns: clampInt(density, MinDensity, MaxDensity)}
	if width <= 0 || height <= 0 {
		return grid{}
	}
	g.cellWidth = float64(width) / float64(g.columns)
	g.cellHeight = g.cellWidth * cellAspect
	g.rows = int(math.Floor(float64(height) / g.cellHeight))
	if g.rows < 1 {
		g.rows = 1
	}
	return g
}

// cellOrigin returns the top-left pixel of the cell at (row, col).
func (g grid) cellOrigin(row, col int) (x, y int) {
	return int(math.Floor(float64(col) * g.cellWidth)),
		int(math.Floor(float64(row) * g.cellHeight))
}

// cellCenter returns the pixel nearest the geometric center of the cell
// at (row, col), before clamping to image bounds.
func (g grid) cellCenter(row, col int) (x, y int) {
	return int((float64(col) + 0.5) * g.cellWidth),
		int((float64(row) + 0.5) * g.cellHeight)
}
