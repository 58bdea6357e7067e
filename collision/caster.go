// Package collision answers kinematic shape casts against a resolv space.
//
// The resolv space keeps the level's pixel coordinates (y flipped to point
// up); bodies work in world units. Scale converts between the two.
package collision

import (
	"sort"

	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/solarlune/resolv"
)

// TagProbe marks the broad-phase query objects owned by casters.
const TagProbe = "probe"

// probePadding widens the broad-phase query, in space units. resolv trims
// one unit off the far edges of a query when mapping it onto cells.
const probePadding = 2

// ObjectCaster implements kinematics.ShapeCaster over a resolv space. The
// broad phase is a single Check with a probe object covering the whole
// sweep; the narrow phase is a swept box test per candidate.
type ObjectCaster struct {
	Space *resolv.Space
	// Self is the actor's own object, never reported as a hit.
	Self  *resolv.Object
	Scale float64

	probe *resolv.Object
}

// NewObjectCaster creates a caster for the actor owning self. The probe
// object is added to space and must be released with Close.
func NewObjectCaster(space *resolv.Space, self *resolv.Object, scale float64) *ObjectCaster {
	if scale <= 0 {
		scale = 1
	}
	probe := resolv.NewObject(0, 0, 1, 1, TagProbe)
	space.Add(probe)

	return &ObjectCaster{
		Space: space,
		Self:  self,
		Scale: scale,
		probe: probe,
	}
}

// Close removes the probe object from the space.
func (c *ObjectCaster) Close() {
	if c.probe != nil {
		c.Space.Remove(c.probe)
		c.probe = nil
	}
}

// Cast sweeps shape along movement for up to maxDistance and appends the
// contacts to hits[:0], nearest first.
func (c *ObjectCaster) Cast(shape kinematics.AABB, movement gamemath.Vec2, filter kinematics.Filter, maxDistance float64, hits []kinematics.ContactHit) []kinematics.ContactHit {
	hits = hits[:0]
	if c.probe == nil || maxDistance <= 0 {
		return hits
	}
	dir := gamemath.Normalize(movement)
	if dir == gamemath.Zero {
		return hits
	}
	sweep := gamemath.Scale(dir, maxDistance)

	c.fitProbe(shape, sweep)
	check := c.probe.Check(0, 0, filter.Tags...)
	if check == nil {
		return hits
	}

	for _, obj := range check.Objects {
		if obj == c.Self || obj.HasTags(TagProbe) {
			continue
		}
		if obj.HasTags(kinematics.TagTrigger) && !filter.UseTriggers {
			continue
		}

		t, normal, ok := c.sweepObject(shape, sweep, obj)
		if !ok {
			continue
		}
		hits = append(hits, kinematics.ContactHit{Normal: normal, Distance: t * maxDistance})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Overlapping returns the objects carrying any of tags whose bounds
// intersect shape. Self and probes are excluded.
func (c *ObjectCaster) Overlapping(shape kinematics.AABB, tags ...string) []*resolv.Object {
	if c.probe == nil {
		return nil
	}
	c.fitProbe(shape, gamemath.Zero)
	check := c.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var found []*resolv.Object
	for _, obj := range check.Objects {
		if obj == c.Self || obj.HasTags(TagProbe) {
			continue
		}
		if Intersects(shape, Bounds(obj, c.Scale)) {
			found = append(found, obj)
		}
	}
	return found
}

func (c *ObjectCaster) sweepObject(shape kinematics.AABB, sweep gamemath.Vec2, obj *resolv.Object) (float64, gamemath.Vec2, bool) {
	bounds := Bounds(obj, c.Scale)
	if slopeType := SlopeType(obj); slopeType != "" {
		return ramp{bounds: bounds, slopeType: slopeType}.sweep(shape, sweep)
	}
	return sweepBox(shape, sweep, bounds)
}

// fitProbe resizes the probe to cover shape over the whole sweep.
func (c *ObjectCaster) fitProbe(shape kinematics.AABB, sweep gamemath.Vec2) {
	minX, maxX := shape.X, shape.X+shape.W
	minY, maxY := shape.Y, shape.Y+shape.H
	if sweep.X < 0 {
		minX += sweep.X
	} else {
		maxX += sweep.X
	}
	if sweep.Y < 0 {
		minY += sweep.Y
	} else {
		maxY += sweep.Y
	}

	c.probe.X = minX*c.Scale - probePadding
	c.probe.Y = minY*c.Scale - probePadding
	c.probe.W = (maxX-minX)*c.Scale + 2*probePadding
	c.probe.H = (maxY-minY)*c.Scale + 2*probePadding
}

// Bounds returns obj's bounds in world units.
func Bounds(obj *resolv.Object, scale float64) kinematics.AABB {
	return kinematics.AABB{
		X: obj.X / scale,
		Y: obj.Y / scale,
		W: obj.W / scale,
		H: obj.H / scale,
	}
}

// SlopeType returns the ramp slope tag of obj, or "" for anything that is
// not a ramp.
func SlopeType(obj *resolv.Object) string {
	if !obj.HasTags(kinematics.TagRamp) {
		return ""
	}
	switch {
	case obj.HasTags(gamemath.Slope45UpRight):
		return gamemath.Slope45UpRight
	case obj.HasTags(gamemath.Slope45UpLeft):
		return gamemath.Slope45UpLeft
	}
	return ""
}

// Intersects reports whether two boxes overlap with positive area.
func Intersects(a, b kinematics.AABB) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
