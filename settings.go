package ascii

// DefaultCharset is the built-in brightness ramp, ordered from the
// sparsest glyph (maps to brightness 0) to the densest (brightness 1).
const DefaultCharset = " .'`^\",:;Il!i~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// Valid parameter ranges. Out-of-range values are clamped, not rejected.
const (
	MinDensity  = 40
	MaxDensity  = 400
	MinFontSize = 6
	MaxFontSize = 24
)

// Background selects what the output bitmap is cleared to before any
// glyphs are drawn.
type Background int

const (
	// BackgroundDark fills the bitmap with a solid near-black.
	BackgroundDark Background = iota
	// BackgroundLight fills the bitmap with a solid near-white.
	BackgroundLight
	// BackgroundNone leaves the bitmap fully transparent.
	BackgroundNone
)

// String returns the name used on the CLI and in the UI.
func (b Background) String() string {
	switch b {
	case BackgroundLight:
		return "light"
	case BackgroundNone:
		return "none"
	default:
		return "dark"
	}
}

// ParseBackground maps a name back to a Background value. Unknown names
// fall back to BackgroundDark, matching the clamp-don't-reject policy
// for every other parameter.
func ParseBackground(s string) Background {
	switch s {
	case "light":
		return BackgroundLight
	case "none":
		return BackgroundNone
	default:
		return BackgroundDark
	}
}

// Settings holds every user-adjustable parameter of the pipeline.
// A Settings value is a snapshot: Render reads it, never writes it.
type Settings struct {
	// Density is the approximate output column count, clamped to
	// [MinDensity, MaxDensity].
	Density int

	// FontSize is the glyph pixel height, clamped to
	// [MinFontSize, MaxFontSize].
	FontSize int

	// Boldness in [0,1] maps linearly to a typographic weight in
	// [300,900].
	Boldness float64

	// Invert flips the brightness-to-character direction.
	Invert bool

	// Colored draws each glyph in its cell's sampled color instead of
	// the fixed monochrome contrast color.
	Colored bool

	// Background selects the surface fill beneath the glyphs.
	Background Background

	// Charset is the brightness ramp. An empty string falls back to
	// DefaultCharset.
	Charset string
}

// DefaultSettings returns the parameter values a fresh renderer starts
// with.
func DefaultSettings() Settings {
	return Settings{
		Density:    120,
		FontSize:   10,
		Boldness:   0.3,
		Background: BackgroundDark,
		Charset:    DefaultCharset,
	}
}

// normalize clamps every field into its valid range and substitutes the
// default ramp for an empty charset. The receiver is unchanged; the
// normalized copy is what a render pass actually consumes.
func (s Settings) normalize() Settings {
	s.Density = clampInt(s.Density, MinDensity, MaxDensity)
	s.FontSize = clampInt(s.FontSize, MinFontSize, MaxFontSize)
	s.Boldness = clampFloat(s.Boldness, 0, 1)
	if s.Background < BackgroundDark || s.Background > BackgroundNone {
		s.Background = BackgroundDark
	}
	if s.Charset == "" {
		s.Charset = DefaultCharset
	}
	return s
}

// FontWeight returns the typographic weight the boldness slider maps
// to: 0 -> 300, 1 -> 900, linear in between.
func (s Settings) FontWeight() int {
	w := 300 + clampFloat(s.Boldness, 0, 1)*600
	if w < 300 {
		w = 300
	}
	if w > 900 {
		w = 900
	}
	return int(w + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
