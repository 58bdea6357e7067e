package gamemath

import "math"

// JumpVelocity returns the launch speed that reaches height under the given
// gravity magnitude and scale, ignoring drag. A negative radicand (bad
// configuration) yields zero impulse.
func JumpVelocity(gravityMagnitude, gravityScale, height float64) float64 {
	radicand := 2 * gravityMagnitude * gravityScale * height
	if radicand <= 0 || math.IsNaN(radicand) {
		return 0
	}
	return math.Sqrt(radicand)
}

// RemoveInbound strips the component of velocity that drives into a surface
// with the given normal. Tangential velocity is untouched; velocity moving
// away from the surface is returned as is.
func RemoveInbound(velocity, normal Vec2) Vec2 {
	projection := Dot(velocity, normal)
	if projection >= 0 {
		return velocity
	}
	return Sub(velocity, Scale(normal, projection))
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
