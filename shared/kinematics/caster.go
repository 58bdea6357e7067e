// Package kinematics implements gravity integration and axis-separated
// move-and-slide for kinematic platformer bodies. World queries go through
// the ShapeCaster interface so the package stays free of any physics
// backend or rendering dependency.
package kinematics

import "github.com/automoto/slopedash/shared/gamemath"

// Default collision tags.
const (
	TagSolid   = "solid"
	TagRamp    = "ramp"
	TagTrigger = "trigger"
)

// ContactHit is a single contact found along a cast.
type ContactHit struct {
	Normal   gamemath.Vec2
	Distance float64
}

// AABB is an axis-aligned box with its minimum corner at (X, Y).
type AABB struct {
	X, Y, W, H float64
}

// Moved returns the box translated by d.
func (b AABB) Moved(d gamemath.Vec2) AABB {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Filter restricts which colliders a cast may report.
type Filter struct {
	// Tags lists the collision layers the body collides with.
	Tags []string
	// UseTriggers reports trigger volumes as well. Bodies leave this off.
	UseTriggers bool
}

// DefaultFilter collides with solid ground and ramps, ignoring triggers.
func DefaultFilter() Filter {
	return Filter{Tags: []string{TagSolid, TagRamp}}
}

// ShapeCaster sweeps a shape along movement and reports the contacts within
// maxDistance, ordered by distance. Hits are appended to hits[:0] so callers
// can reuse a scratch buffer between casts.
type ShapeCaster interface {
	Cast(shape AABB, movement gamemath.Vec2, filter Filter, maxDistance float64, hits []ContactHit) []ContactHit
}

// CasterFunc adapts a function to the ShapeCaster interface.
type CasterFunc func(shape AABB, movement gamemath.Vec2, filter Filter, maxDistance float64, hits []ContactHit) []ContactHit

func (f CasterFunc) Cast(shape AABB, movement gamemath.Vec2, filter Filter, maxDistance float64, hits []ContactHit) []ContactHit {
	return f(shape, movement, filter, maxDistance, hits)
}

// NoCollisions is a caster for bodies in empty space.
var NoCollisions = CasterFunc(func(_ AABB, _ gamemath.Vec2, _ Filter, _ float64, hits []ContactHit) []ContactHit {
	return hits[:0]
})
