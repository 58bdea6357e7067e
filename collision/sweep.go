package collision

import (
	"math"

	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
)

// sweepBox casts box along v (the full cast vector) against a static target
// box. t is the fraction of v travelled at first contact; a box that
// already overlaps the target reports t=0 with the normal of the shallowest
// entry axis.
func sweepBox(box kinematics.AABB, v gamemath.Vec2, target kinematics.AABB) (t float64, normal gamemath.Vec2, ok bool) {
	entryX, exitX, normalX, okX := slab(box.X, box.W, v.X, target.X, target.W)
	if !okX {
		return 0, gamemath.Zero, false
	}
	entryY, exitY, normalY, okY := slab(box.Y, box.H, v.Y, target.Y, target.H)
	if !okY {
		return 0, gamemath.Zero, false
	}

	entry := entryX
	normal = gamemath.V(normalX, 0)
	if entryY > entryX {
		entry = entryY
		normal = gamemath.V(0, normalY)
	}
	exit := math.Min(exitX, exitY)

	if entry > exit || exit <= 0 || entry > 1 {
		return 0, gamemath.Zero, false
	}
	if math.IsInf(entry, -1) {
		// Overlapping on both axes with no movement.
		return 0, gamemath.Zero, false
	}
	return math.Max(entry, 0), normal, true
}

// slab returns the entry and exit fractions along one axis and the normal
// sign of the face entered. Boxes that merely touch along an axis with no
// motion on it do not overlap.
func slab(pos, size, v, targetPos, targetSize float64) (entry, exit, normal float64, ok bool) {
	switch {
	case v > 0:
		return (targetPos - (pos + size)) / v, (targetPos + targetSize - pos) / v, -1, true
	case v < 0:
		return (targetPos + targetSize - pos) / v, (targetPos - (pos + size)) / v, 1, true
	default:
		if pos+size <= targetPos || pos >= targetPos+targetSize {
			return 0, 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), 0, true
	}
}

// ramp is a right-triangle collider filling the part of its bounds below
// the diagonal.
type ramp struct {
	bounds    kinematics.AABB
	slopeType string
}

// normal returns the outward normal of the sloped face.
func (r ramp) normal() gamemath.Vec2 {
	if r.slopeType == gamemath.Slope45UpLeft {
		return gamemath.Normalize(gamemath.V(r.bounds.H, r.bounds.W))
	}
	return gamemath.Normalize(gamemath.V(-r.bounds.H, r.bounds.W))
}

// foot returns a point on the sloped face.
func (r ramp) foot() gamemath.Vec2 {
	if r.slopeType == gamemath.Slope45UpLeft {
		return gamemath.V(r.bounds.X, r.bounds.Y+r.bounds.H)
	}
	return gamemath.V(r.bounds.X, r.bounds.Y)
}

// peakX returns the x coordinate of the ramp's highest point.
func (r ramp) peakX() float64 {
	if r.slopeType == gamemath.Slope45UpLeft {
		return r.bounds.X
	}
	return r.bounds.X + r.bounds.W
}

// supportCorner returns the corner of box that meets the sloped face first.
func (r ramp) supportCorner(box kinematics.AABB) gamemath.Vec2 {
	if r.slopeType == gamemath.Slope45UpLeft {
		return gamemath.V(box.X, box.Y)
	}
	return gamemath.V(box.X+box.W, box.Y)
}

// sweep casts box along v against the ramp. The sloped face is tested
// exactly; the flat faces use the bounding box sweep and are kept only
// where the triangle actually has a face.
func (r ramp) sweep(box kinematics.AABB, v gamemath.Vec2) (t float64, normal gamemath.Vec2, ok bool) {
	t, normal, ok = r.sweepFace(box, v)

	bt, bn, bok := sweepBox(box, v, r.bounds)
	if !bok || !r.solidFace(box, v, bt, bn) {
		return t, normal, ok
	}
	if !ok || bt < t {
		return bt, bn, true
	}
	return t, normal, ok
}

func (r ramp) sweepFace(box kinematics.AABB, v gamemath.Vec2) (float64, gamemath.Vec2, bool) {
	n := r.normal()
	corner := r.supportCorner(box)
	separation := gamemath.Dot(n, gamemath.Sub(corner, r.foot()))
	approach := gamemath.Dot(n, v)

	var t float64
	switch {
	case separation < 0:
		// Corner already below the surface line.
		if corner.Y < r.bounds.Y || approach > 0 {
			return 0, gamemath.Zero, false
		}
		t = 0
	case approach >= 0:
		return 0, gamemath.Zero, false
	default:
		t = separation / -approach
		if t > 1 {
			return 0, gamemath.Zero, false
		}
	}

	contactX := corner.X + v.X*t
	if contactX < r.bounds.X || contactX > r.bounds.X+r.bounds.W {
		return 0, gamemath.Zero, false
	}
	return t, n, true
}

// solidFace reports whether a bounding-box contact lands on a face the
// triangle really has: the tall vertical side, the bottom, or the top edge
// where the box straddles the peak.
func (r ramp) solidFace(box kinematics.AABB, v gamemath.Vec2, t float64, n gamemath.Vec2) bool {
	switch {
	case n.Y < 0:
		return true
	case n.Y > 0:
		at := box.Moved(gamemath.Scale(v, t))
		peak := r.peakX()
		return at.X <= peak && at.X+at.W >= peak
	case r.slopeType == gamemath.Slope45UpLeft:
		return n.X < 0
	default:
		return n.X > 0
	}
}
