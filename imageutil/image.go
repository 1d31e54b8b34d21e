// Package imageutil provides pure Go image utilities for the rendering
// pipeline: a straight-alpha pixel wrapper, high-quality resizing, and
// image file IO.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGBAImage wraps image.NRGBA with convenience methods for pixel
// access. Straight (non-premultiplied) alpha keeps the original channel
// values of partially transparent pixels intact, which matters both for
// the transparency cutoff and for color-sampled glyph fills.
type RGBAImage struct {
	*image.NRGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
// The pixels start fully transparent.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage converts any image.Image to an RGBAImage with its origin
// at (0, 0).
func FromImage(img image.Image) *RGBAImage {
	if wrapped, ok := img.(*RGBAImage); ok {
		return wrapped
	}
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return &RGBAImage{NRGBA: nrgba}
	}

	bounds := img.Bounds()
	dst := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.NRGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGBA returns the straight-alpha pixel at (x, y).
func (img *RGBAImage) GetRGBA(x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

// SetRGBA sets the straight-alpha pixel at (x, y).
func (img *RGBAImage) SetRGBA(x, y int, c color.NRGBA) {
	img.SetNRGBA(x, y, c)
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
