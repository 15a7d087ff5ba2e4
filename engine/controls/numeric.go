package controls

import (
	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/chewxy/math32"
)

// Clamp limits v to [lo, hi].
func Clamp[T common.Number](v, lo, hi T) T {
	return common.Clamp(v, lo, hi)
}

// Wrap360 folds an angle into [0, 360).
func Wrap360(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Orbit folds an angle into (-360, 360), keeping its sign, the way the orbit
// views accumulate arrow-key rotation.
func Orbit(deg float32) float32 {
	return math32.Mod(deg, 360)
}

// Step adds delta to v and clamps the result to [lo, hi].
func Step[T common.Number](v, delta, lo, hi T) T {
	return common.Clamp(v+delta, lo, hi)
}
