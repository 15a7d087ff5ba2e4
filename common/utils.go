package common

import "math"

// Number is the set of numeric types the clamp helpers accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapIndex maps i into [0, n) with wrap-around for negative values.
// Returns 0 when n <= 0.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Phase returns the animation angle in degrees for t seconds at 90 degrees
// per second, wrapped into [0, 360).
func Phase(t float64) float32 {
	zh := math.Mod(90*t, 360)
	if zh < 0 {
		zh += 360
	}
	return float32(zh)
}
