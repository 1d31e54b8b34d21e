package imageutil

import "image/color"

// CreateSolidImage creates a test image filled with a single color.
func CreateSolidImage(width, height int, c color.NRGBA) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// CreateGradientImage creates a horizontal black-to-white gradient test
// image.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			img.SetRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateTransparentImage creates a fully transparent test image.
func CreateTransparentImage(width, height int) *RGBAImage {
	return NewRGBAImage(width, height)
}

// CreateCheckerboardImage creates a black/white checkerboard pattern.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				v = 255
			}
			img.SetRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}
