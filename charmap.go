package ascii

import "math"

// mapChar quantizes a brightness value onto the ramp: 0 selects the
// first rune, 1 the last, values in between round to the nearest index.
// The ramp must be non-empty; Settings.normalize guarantees that before
// a pass starts.
func mapChar(brightness float64, ramp []rune) rune {
	idx := rampIndex(brightness, len(ramp))
	return ramp[idx]
}

// rampIndex returns round(clamp01(brightness) * (n-1)).
func rampIndex(brightness float64, n int) int {
	b := clampFloat(brightness, 0, 1)
	return int(math.Round(b * float64(n-1)))
}
