package ascii

import "testing"

func TestRampIndexEndpoints(t *testing.T) {
	t.Parallel()

	n := len([]rune(DefaultCharset))
	if got := rampIndex(0, n); got != 0 {
		t.Errorf("rampIndex(0) = %d, want 0", got)
	}
	if got := rampIndex(1, n); got != n-1 {
		t.Errorf("rampIndex(1) = %d, want %d", got, n-1)
	}

	// Out-of-range brightness clamps rather than indexing out of
	// bounds.
	if got := rampIndex(-0.5, n); got != 0 {
		t.Errorf("rampIndex(-0.5) = %d, want 0", got)
	}
	if got := rampIndex(1.5, n); got != n-1 {
		t.Errorf("rampIndex(1.5) = %d, want %d", got, n-1)
	}
}

func TestRampIndexMonotonic(t *testing.T) {
	t.Parallel()

	n := len([]rune(DefaultCharset))
	prev := 0
	for i := 0; i <= 255; i++ {
		idx := rampIndex(float64(i)/255, n)
		if idx < prev {
			t.Fatalf("rampIndex not monotonic: index %d at %d/255 after %d", idx, i, prev)
		}
		prev = idx
	}
	if prev != n-1 {
		t.Errorf("rampIndex(255/255) = %d, want %d", prev, n-1)
	}
}

func TestRampIndexInvertSymmetry(t *testing.T) {
	t.Parallel()

	// Inversion maps the ramp's two ends onto each other.
	n := len([]rune(DefaultCharset))
	if got := rampIndex(1-0.0, n); got != n-1 {
		t.Errorf("inverted black maps to index %d, want %d", got, n-1)
	}
	if got := rampIndex(1-1.0, n); got != 0 {
		t.Errorf("inverted white maps to index %d, want 0", got)
	}

	// Away from rounding boundaries the symmetry is exact.
	for _, b := range []float64{0.1, 0.25, 0.4, 0.6, 0.75, 0.9} {
		lo, hi := rampIndex(b, n), rampIndex(1-b, n)
		if lo+hi != n-1 && lo+hi != n {
			t.Errorf("rampIndex(%v)+rampIndex(1-%v) = %d, want %d or %d",
				b, b, lo+hi, n-1, n)
		}
	}
}

func TestMapCharSelectsRampEnds(t *testing.T) {
	t.Parallel()

	ramp := []rune(DefaultCharset)
	if ch := mapChar(0, ramp); ch != ' ' {
		t.Errorf("mapChar(0) = %q, want space", ch)
	}
	if ch := mapChar(1, ramp); ch != '$' {
		t.Errorf("mapChar(1) = %q, want '$'", ch)
	}
}

func TestMapCharSingleRuneRamp(t *testing.T) {
	t.Parallel()

	ramp := []rune("#")
	for _, b := range []float64{0, 0.5, 1} {
		if ch := mapChar(b, ramp); ch != '#' {
			t.Errorf("mapChar(%v) = %q, want '#'", b, ch)
		}
	}
}
