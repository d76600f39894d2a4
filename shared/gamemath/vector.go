package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec2 is a 2D vector in arena coordinates (y grows downward).
type Vec2 = cp.Vector

// NeutralDirection stands in for the direction of a zero-length vector: straight down.
var NeutralDirection = Vec2{X: 0, Y: 1}

// ClampMagnitude shortens v to max if it is longer. Saturating, never an error.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	length := v.Length()
	if length <= max {
		return v
	}
	return v.Mult(max / length)
}

// Direction returns the unit vector of v, or NeutralDirection when v has no length.
func Direction(v Vec2) Vec2 {
	length := v.Length()
	if length == 0 || math.IsNaN(length) {
		return NeutralDirection
	}
	return v.Mult(1 / length)
}

// ClampFloat clamps value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
