// pkg/utils/math.go
package utils

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	diff := target - current
	if math.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}

// WrapDegrees keeps an angle in [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
