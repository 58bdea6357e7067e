package gamemath

import "math"

// Slope type tags, shared by level data and the collision layer.
const (
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)

var invSqrt2 = 1 / math.Sqrt2

// SlopeNormal returns the outward surface normal of a 45 degree ramp in
// y-up coordinates, or Up for an unknown slope type.
func SlopeNormal(slopeType string) Vec2 {
	switch slopeType {
	case Slope45UpRight:
		// Surface rises left to right, so it faces up-left.
		return Vec2{X: -invSqrt2, Y: invSqrt2}
	case Slope45UpLeft:
		return Vec2{X: invSqrt2, Y: invSqrt2}
	default:
		return Up
	}
}

// SlopeSurfaceY returns the ramp surface height at world x for a ramp whose
// bottom-left corner is (rampX, rampY). x is clamped to the ramp span.
func SlopeSurfaceY(x, rampX, rampY, rampW, rampH float64, slopeType string) float64 {
	relativeX := ClampFloat(x-rampX, 0, rampW)
	t := relativeX / rampW

	switch slopeType {
	case Slope45UpRight:
		return rampY + rampH*t
	case Slope45UpLeft:
		return rampY + rampH*(1-t)
	default:
		return rampY + rampH
	}
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// WalkableAngle returns the steepest walkable slope in degrees for a
// minimum ground normal Y component.
func WalkableAngle(minGroundNormalY float64) float64 {
	return math.Acos(ClampFloat(minGroundNormalY, -1, 1)) * 180 / math.Pi
}
