package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the 2D vector used for positions, velocities, normals and deltas.
type Vec2 = dmath.Vec2

// Zero is the zero vector.
var Zero = Vec2{}

// Up is the world up direction (y-up).
var Up = Vec2{X: 0, Y: 1}

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the magnitude of v.
func Length(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Tangent returns the walk direction along a surface with the given normal,
// i.e. the normal rotated a quarter turn clockwise.
func Tangent(normal Vec2) Vec2 {
	return Vec2{X: normal.Y, Y: -normal.X}
}

// NearlyEqual reports whether a and b differ by at most eps on both axes.
func NearlyEqual(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
