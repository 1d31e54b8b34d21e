package ascii

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Fixed colors for the monochrome fill and the opaque backgrounds,
// chosen for contrast: light ink on dark or transparent surfaces, dark
// ink on light surfaces.
var (
	lightInk  = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	darkInk   = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	darkFill  = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	lightFill = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
)

// boldWeight is the ramp weight at which the bold face takes over from
// the regular one; doubleStrikeWeight adds a second offset pass on top
// of the bold face for the heaviest settings.
const (
	boldWeight         = 600
	doubleStrikeWeight = 800
)

// Embedded Go Mono faces, parsed once. Parsing embedded data cannot
// fail at runtime.
var (
	monoRegular = mustParseFont(gomono.TTF)
	monoBold    = mustParseFont(gomonobold.TTF)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// glyphPainter rasterizes ramp runes at a fixed size and weight and
// stamps them onto the output bitmap. Each rune is rendered to an alpha
// mask once per pass and cached; the mask is tinted per cell with
// draw.DrawMask, so the anti-aliased coverage from freetype carries
// into the output regardless of fill color.
type glyphPainter struct {
	ttf          *truetype.Font
	size         int
	doubleStrike bool

	maskWidth  int
	maskHeight int
	ascent     int

	masks map[rune]*image.Alpha
}

// newGlyphPainter selects a face and strike mode from the normalized
// settings. Weight [300,600) renders with the regular face, [600,900]
// with the bold face, and weights at or above doubleStrikeWeight add a
// second draw pass offset one pixel right.
func newGlyphPainter(s Settings) *glyphPainter {
	weight := s.FontWeight()
	ttf := monoRegular
	if weight >= boldWeight {
		ttf = monoBold
	}

	p := &glyphPainter{
		ttf:          ttf,
		size:         s.FontSize,
		doubleStrike: weight >= doubleStrikeWeight,
		masks:        make(map[rune]*image.Alpha),
	}

	// Face metrics size the mask box so ascenders and descenders both
	// land inside it. The face is only needed for metrics; rendering
	// goes through a freetype context.
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(p.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	p.ascent = metrics.Ascent.Ceil()
	p.maskHeight = (metrics.Ascent + metrics.Descent).Ceil()
	if adv, ok := face.GlyphAdvance('M'); ok {
		p.maskWidth = adv.Ceil()
	} else {
		p.maskWidth = p.size
	}
	if p.doubleStrike {
		p.maskWidth++
	}
	if p.maskWidth < 1 {
		p.maskWidth = 1
	}
	if p.maskHeight < 1 {
		p.maskHeight = 1
	}

	return p
}

// mask returns the alpha coverage for r, rasterizing it on first use.
func (p *glyphPainter) mask(r rune) *image.Alpha {
	if m, ok := p.masks[r]; ok {
		return m
	}

	m := image.NewAlpha(image.Rect(0, 0, p.maskWidth, p.maskHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(p.ttf)
	ctx.SetFontSize(float64(p.size))
	ctx.SetClip(m.Bounds())
	ctx.SetDst(m)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	pt := freetype.Pt(0, p.ascent)
	ctx.DrawString(string(r), pt)
	if p.doubleStrike {
		ctx.DrawString(string(r), freetype.Pt(1, p.ascent))
	}

	p.masks[r] = m
	return m
}

// drawGlyph stamps r onto dst with its top-left at (x, y), tinted with
// ink. Pixels outside dst are clipped by DrawMask.
func (p *glyphPainter) drawGlyph(dst *image.RGBA, x, y int, r rune, ink color.RGBA) {
	m := p.mask(r)
	rect := m.Bounds().Add(image.Pt(x, y))
	draw.DrawMask(dst, rect, image.NewUniform(ink), image.Point{}, m, image.Point{}, draw.Over)
}

// fillBackground clears dst according to the background mode. A fresh
// RGBA bitmap is already fully transparent, so BackgroundNone is a
// no-op.
func fillBackground(dst *image.RGBA, bg Background) {
	switch bg {
	case BackgroundDark:
		draw.Draw(dst, dst.Bounds(), image.NewUniform(darkFill), image.Point{}, draw.Src)
	case BackgroundLight:
		draw.Draw(dst, dst.Bounds(), image.NewUniform(lightFill), image.Point{}, draw.Src)
	}
}

// contrastInk is the fixed monochrome fill for a background mode.
func contrastInk(bg Background) color.RGBA {
	if bg == BackgroundLight {
		return darkInk
	}
	return lightInk
}
