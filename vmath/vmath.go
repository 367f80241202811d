package vmath

import (
	"math"
)

// Epsilon is the tolerance used by approximate comparisons
const Epsilon = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize2 scales (x, z) to unit length, zero vector stays zero
func Normalize2(x, z float64) (float64, float64) {
	mag := math.Hypot(x, z)
	if mag == 0 {
		return 0, 0
	}
	inv := 1.0 / mag
	return x * inv, z * inv
}

// WrapAngle folds an angle in radians into (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
