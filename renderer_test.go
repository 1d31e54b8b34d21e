package ascii

import "testing"

func TestNewRendererDefaults(t *testing.T) {
	t.Parallel()

	s := NewRenderer().Settings()
	want := DefaultSettings()
	if s.Density != want.Density || s.FontSize != want.FontSize {
		t.Errorf("default settings = %+v, want %+v", s, want)
	}
	if s.Charset != DefaultCharset {
		t.Error("default renderer should carry the built-in ramp")
	}
}

func TestRendererOptions(t *testing.T) {
	t.Parallel()

	r := NewRenderer(
		WithDensity(200),
		WithFontSize(18),
		WithBoldness(0.75),
		WithInvert(true),
		WithColored(true),
		WithBackground(BackgroundLight),
		WithCharset(" #"),
	)

	s := r.Settings()
	if s.Density != 200 {
		t.Errorf("Density = %d, want 200", s.Density)
	}
	if s.FontSize != 18 {
		t.Errorf("FontSize = %d, want 18", s.FontSize)
	}
	if s.Boldness != 0.75 {
		t.Errorf("Boldness = %v, want 0.75", s.Boldness)
	}
	if !s.Invert || !s.Colored {
		t.Error("Invert and Colored should both be set")
	}
	if s.Background != BackgroundLight {
		t.Errorf("Background = %v, want light", s.Background)
	}
	if s.Charset != " #" {
		t.Errorf("Charset = %q, want %q", s.Charset, " #")
	}
}

func TestRendererSettingsAreNormalized(t *testing.T) {
	t.Parallel()

	r := NewRenderer(WithDensity(9999), WithFontSize(1), WithBoldness(5))
	s := r.Settings()
	if s.Density != MaxDensity {
		t.Errorf("Density = %d, want clamped to %d", s.Density, MaxDensity)
	}
	if s.FontSize != MinFontSize {
		t.Errorf("FontSize = %d, want clamped to %d", s.FontSize, MinFontSize)
	}
	if s.Boldness != 1 {
		t.Errorf("Boldness = %v, want clamped to 1", s.Boldness)
	}
}

func TestWithSettingsReplacesEverything(t *testing.T) {
	t.Parallel()

	custom := Settings{
		Density:    77,
		FontSize:   7,
		Boldness:   0.9,
		Invert:     true,
		Background: BackgroundNone,
		Charset:    "ab",
	}
	s := NewRenderer(WithDensity(300), WithSettings(custom)).Settings()
	if s.Density != 77 || s.Charset != "ab" || s.Background != BackgroundNone {
		t.Errorf("settings after WithSettings = %+v, want %+v", s, custom)
	}
}
