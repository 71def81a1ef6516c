// Package transition maps a moment of the day onto a pair of wallpaper
// frames and a blend fraction. This is the mapping
//
//	[dawn, ..., now, ..., dusk]  ->  [0, ..., n-1]
//
// with the dusk-aligned frame configurable, so image sets that end
// before or extend past actual dusk still produce sensible coverage.
package transition

import (
	"math"
	"time"
)

// Blend is the result of locating a moment in the frame sequence:
// frames From and To mixed with the given Fraction of To.
type Blend struct {
	From     int
	To       int
	Fraction float64
}

// Boundary reports whether the blend is the out-of-range fallback
// (both indexes the last frame, fraction 1).
func (b Blend) Boundary() bool {
	return b.From == b.To
}

// Locate maps elapsed time since dawn onto a frame pair.
//
// The fractional position is duskIndex * cursor / dayLength, linear in
// elapsed daylight. Positions outside the interpolatable interior
// [1, n-2] — before dawn, past the usable frames, or any degenerate
// input (n < 3, dayLength <= 0, duskIndex <= 0) — clamp to the last
// frame with fraction 1 rather than wrapping or extrapolating.
// Requires n >= 1.
func Locate(cursor, dayLength time.Duration, n, duskIndex int) Blend {
	last := Blend{From: n - 1, To: n - 1, Fraction: 1}
	if dayLength <= 0 || duskIndex <= 0 {
		return last
	}

	position := float64(duskIndex) * cursor.Seconds() / dayLength.Seconds()
	if position < 1 || position > float64(n-2) {
		return last
	}

	i := int(math.Floor(position))
	return Blend{From: i, To: i + 1, Fraction: position - float64(i)}
}
