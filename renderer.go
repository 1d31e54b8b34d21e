package ascii

import (
	"errors"
	"image"
)

// ErrNoImage is returned when Render is called without a usable source
// image. Callers treat it as a disabled precondition, not a failure.
var ErrNoImage = errors.New("ascii: no image to render")

// Renderer holds the settings snapshot a render pass consumes. A
// Renderer carries no state between passes: identical image and
// settings always produce byte-identical transcripts and
// pixel-identical bitmaps.
type Renderer struct {
	settings Settings
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer starting from DefaultSettings with the
// given options applied.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{settings: DefaultSettings()}
	r.Apply(opts...)
	return r
}

// Apply applies further options, typically between passes when the user
// adjusts a parameter. Values are clamped at render time, so options
// never fail.
func (r *Renderer) Apply(opts ...RendererOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// Settings returns the normalized settings the next pass will use.
func (r *Renderer) Settings() Settings {
	return r.settings.normalize()
}

// WithSettings replaces the whole settings value.
func WithSettings(s Settings) RendererOption {
	return func(r *Renderer) { r.settings = s }
}

// WithDensity sets the approximate output column count.
func WithDensity(n int) RendererOption {
	return func(r *Renderer) { r.settings.Density = n }
}

// WithFontSize sets the glyph pixel height.
func WithFontSize(n int) RendererOption {
	return func(r *Renderer) { r.settings.FontSize = n }
}

// WithBoldness sets the normalized font weight in [0,1].
func WithBoldness(b float64) RendererOption {
	return func(r *Renderer) { r.settings.Boldness = b }
}

// WithInvert flips the brightness-to-character direction.
func WithInvert(invert bool) RendererOption {
	return func(r *Renderer) { r.settings.Invert = invert }
}

// WithColored selects per-glyph source color over the fixed monochrome
// fill.
func WithColored(colored bool) RendererOption {
	return func(r *Renderer) { r.settings.Colored = colored }
}

// WithBackground sets the surface fill mode.
func WithBackground(bg Background) RendererOption {
	return func(r *Renderer) { r.settings.Background = bg }
}

// WithCharset sets the brightness ramp. An empty string falls back to
// DefaultCharset.
func WithCharset(charset string) RendererOption {
	return func(r *Renderer) { r.settings.Charset = charset }
}

// Render runs one full pipeline pass over src and returns both output
// artifacts. The pass is synchronous and reads a single snapshot of the
// image and settings; src is never mutated.
func (r *Renderer) Render(src image.Image) (*Output, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	return renderPass(src, r.Settings())
}
