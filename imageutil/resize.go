package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the high-quality choice for
	// downscaling photographic sources.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an image to the specified dimensions using the given
// interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.NRGBA, dstRect, img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while
// maintaining aspect ratio.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, interp)
}
