package collision

import (
	"math"
	"testing"

	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/solarlune/resolv"
)

const testScale = 16

func newSpace() *resolv.Space {
	return resolv.NewSpace(40*testScale, 40*testScale, testScale, testScale)
}

// addBox places a box given in world units.
func addBox(space *resolv.Space, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*testScale, y*testScale, w*testScale, h*testScale, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*testScale, h*testScale))
	space.Add(obj)
	return obj
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCastFloorBelow(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 0, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	shape := kinematics.AABB{X: 2, Y: 1.5, W: 1, H: 1}
	hits := c.Cast(shape, gamemath.V(0, -1), kinematics.DefaultFilter(), 1, nil)

	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if !almost(hits[0].Distance, 0.5) {
		t.Errorf("distance = %f, want 0.5", hits[0].Distance)
	}
	if hits[0].Normal != gamemath.Up {
		t.Errorf("normal = %+v, want up", hits[0].Normal)
	}
}

func TestCastBeyondMaxDistance(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 0, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	shape := kinematics.AABB{X: 2, Y: 5, W: 1, H: 1}
	if hits := c.Cast(shape, gamemath.V(0, -1), kinematics.DefaultFilter(), 1, nil); len(hits) != 0 {
		t.Fatalf("got %d hits for a floor 4 units away, want 0", len(hits))
	}
}

func TestCastSortsByDistance(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 2, 10, 1, kinematics.TagSolid)
	addBox(space, 0, 6, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	shape := kinematics.AABB{X: 2, Y: 10, W: 1, H: 1}
	hits := c.Cast(shape, gamemath.V(0, -1), kinematics.DefaultFilter(), 10, nil)

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if !almost(hits[0].Distance, 3) || !almost(hits[1].Distance, 7) {
		t.Fatalf("distances = %f, %f, want 3, 7", hits[0].Distance, hits[1].Distance)
	}
}

func TestCastWall(t *testing.T) {
	space := newSpace()
	addBox(space, 5, 0, 1, 5, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	shape := kinematics.AABB{X: 2, Y: 1, W: 1, H: 1}
	hits := c.Cast(shape, gamemath.V(1, 0), kinematics.DefaultFilter(), 3, nil)

	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if !almost(hits[0].Distance, 2) || hits[0].Normal != gamemath.V(-1, 0) {
		t.Fatalf("hit = %+v, want distance 2 normal (-1, 0)", hits[0])
	}
}

func TestCastOverlapReportsZeroDistance(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 0, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	shape := kinematics.AABB{X: 2, Y: 0.5, W: 1, H: 1}
	hits := c.Cast(shape, gamemath.V(0, -1), kinematics.DefaultFilter(), 1, nil)

	if len(hits) != 1 || hits[0].Distance != 0 {
		t.Fatalf("hits = %+v, want one hit at distance 0", hits)
	}
}

func TestCastSlidingAlongFloorIsFree(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 0, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	shape := kinematics.AABB{X: 2, Y: 1, W: 1, H: 1}
	if hits := c.Cast(shape, gamemath.V(1, 0), kinematics.DefaultFilter(), 2, nil); len(hits) != 0 {
		t.Fatalf("touching floor blocked horizontal motion: %+v", hits)
	}
}

func TestCastTriggers(t *testing.T) {
	tests := []struct {
		name        string
		useTriggers bool
		want        int
	}{
		{name: "skipped", useTriggers: false, want: 0},
		{name: "reported", useTriggers: true, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space := newSpace()
			addBox(space, 0, 0, 10, 1, kinematics.TagTrigger)
			c := NewObjectCaster(space, nil, testScale)

			filter := kinematics.Filter{
				Tags:        []string{kinematics.TagSolid, kinematics.TagTrigger},
				UseTriggers: tt.useTriggers,
			}
			shape := kinematics.AABB{X: 2, Y: 1.5, W: 1, H: 1}
			if hits := c.Cast(shape, gamemath.V(0, -1), filter, 1, nil); len(hits) != tt.want {
				t.Fatalf("got %d hits, want %d", len(hits), tt.want)
			}
		})
	}
}

func TestCastIgnoresSelfAndProbes(t *testing.T) {
	space := newSpace()
	self := addBox(space, 2, 1.5, 1, 1, "actor")
	other := NewObjectCaster(space, nil, testScale)
	other.fitProbe(kinematics.AABB{X: 2, Y: 0, W: 1, H: 1}, gamemath.Zero)
	other.probe.Update()
	c := NewObjectCaster(space, self, testScale)

	shape := kinematics.AABB{X: 2, Y: 1.5, W: 1, H: 1}
	if hits := c.Cast(shape, gamemath.V(0, -1), kinematics.Filter{}, 1, nil); len(hits) != 0 {
		t.Fatalf("got %d hits from own object or probes, want 0", len(hits))
	}
}

func TestCastReusesScratch(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 0, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)

	scratch := make([]kinematics.ContactHit, 3, 8)
	hits := c.Cast(kinematics.AABB{X: 2, Y: 1.5, W: 1, H: 1}, gamemath.V(0, -1), kinematics.DefaultFilter(), 1, scratch)

	if len(hits) != 1 {
		t.Fatalf("stale scratch entries kept: %d hits", len(hits))
	}
	if &hits[0] != &scratch[0] {
		t.Fatalf("scratch buffer was not reused")
	}
}

func TestCastAfterClose(t *testing.T) {
	space := newSpace()
	addBox(space, 0, 0, 10, 1, kinematics.TagSolid)
	c := NewObjectCaster(space, nil, testScale)
	before := len(space.Objects())

	c.Close()

	if len(space.Objects()) != before-1 {
		t.Fatalf("probe still in space")
	}
	if hits := c.Cast(kinematics.AABB{X: 2, Y: 1.5, W: 1, H: 1}, gamemath.V(0, -1), kinematics.DefaultFilter(), 1, nil); len(hits) != 0 {
		t.Fatalf("closed caster reported hits")
	}
}

func TestCastRamp(t *testing.T) {
	upRight := gamemath.SlopeNormal(gamemath.Slope45UpRight)

	tests := []struct {
		name         string
		shape        kinematics.AABB
		movement     gamemath.Vec2
		maxDistance  float64
		wantDistance float64
		wantNormal   gamemath.Vec2
	}{
		{
			name:         "lands on slope face",
			shape:        kinematics.AABB{X: 4.2, Y: 3, W: 0.5, H: 1},
			movement:     gamemath.V(0, -1),
			maxDistance:  2,
			wantDistance: 1.3,
			wantNormal:   upRight,
		},
		{
			name:         "straddling the peak lands on top",
			shape:        kinematics.AABB{X: 4.8, Y: 3, W: 0.5, H: 1},
			movement:     gamemath.V(0, -1),
			maxDistance:  2,
			wantDistance: 1,
			wantNormal:   gamemath.Up,
		},
		{
			name:         "back face is a wall",
			shape:        kinematics.AABB{X: 5.5, Y: 1.2, W: 0.5, H: 0.5},
			movement:     gamemath.V(-1, 0),
			maxDistance:  1,
			wantDistance: 0.5,
			wantNormal:   gamemath.V(1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space := newSpace()
			addBox(space, 4, 1, 1, 1, kinematics.TagRamp, gamemath.Slope45UpRight)
			c := NewObjectCaster(space, nil, testScale)

			hits := c.Cast(tt.shape, tt.movement, kinematics.DefaultFilter(), tt.maxDistance, nil)
			if len(hits) != 1 {
				t.Fatalf("got %d hits, want 1", len(hits))
			}
			hit := hits[0]
			if !almost(hit.Distance, tt.wantDistance) {
				t.Errorf("distance = %f, want %f", hit.Distance, tt.wantDistance)
			}
			if !almost(hit.Normal.X, tt.wantNormal.X) || !almost(hit.Normal.Y, tt.wantNormal.Y) {
				t.Errorf("normal = %+v, want %+v", hit.Normal, tt.wantNormal)
			}
		})
	}
}

func TestCastRampIgnoresOpenTop(t *testing.T) {
	space := newSpace()
	addBox(space, 4, 1, 1, 1, kinematics.TagRamp, gamemath.Slope45UpLeft)
	c := NewObjectCaster(space, nil, testScale)

	// Away from the peak the top of the bounding box is open air.
	shape := kinematics.AABB{X: 4.6, Y: 3, W: 0.5, H: 1}
	hits := c.Cast(shape, gamemath.V(0, -1), kinematics.DefaultFilter(), 2, nil)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if !almost(hits[0].Distance, 1.6) {
		t.Fatalf("distance = %f, want 1.6 to the surface under x=4.6", hits[0].Distance)
	}
}

func TestOverlapping(t *testing.T) {
	space := newSpace()
	zone := addBox(space, 0, 0, 4, 2, kinematics.TagTrigger, "deadzone")
	addBox(space, 10, 0, 4, 2, kinematics.TagTrigger)
	c := NewObjectCaster(space, nil, testScale)

	found := c.Overlapping(kinematics.AABB{X: 1, Y: 1, W: 1, H: 1}, kinematics.TagTrigger)
	if len(found) != 1 || found[0] != zone {
		t.Fatalf("overlapping = %v, want only the deadzone", found)
	}
	if found := c.Overlapping(kinematics.AABB{X: 6, Y: 1, W: 1, H: 1}, kinematics.TagTrigger); len(found) != 0 {
		t.Fatalf("found %d triggers in empty area", len(found))
	}
}
