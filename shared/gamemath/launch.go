package gamemath

import "math"

// Stretch returns the effective pull-back length: |drag| saturated at maxStretch.
func Stretch(drag Vec2, maxStretch float64) float64 {
	return math.Min(drag.Length(), maxStretch)
}

// LaunchSpeed maps a drag vector linearly onto [0, maxSpeed].
// A full pull-back of maxStretch or more yields maxSpeed.
func LaunchSpeed(drag Vec2, maxStretch, maxSpeed float64) float64 {
	if maxStretch <= 0 {
		return 0
	}
	return Stretch(drag, maxStretch) / maxStretch * maxSpeed
}

// LaunchVelocity returns the release velocity for a drag vector.
// The direction follows the drag; a zero drag uses NeutralDirection at zero speed.
func LaunchVelocity(drag Vec2, maxStretch, maxSpeed float64) Vec2 {
	return Direction(drag).Mult(LaunchSpeed(drag, maxStretch, maxSpeed))
}
