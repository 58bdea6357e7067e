package controller

import (
	"math"
	"testing"

	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
)

var gravity = gamemath.V(0, -9.8)

// floor is an infinite horizontal floor at y=0.
var floor = kinematics.CasterFunc(func(shape kinematics.AABB, movement gamemath.Vec2, _ kinematics.Filter, maxDistance float64, hits []kinematics.ContactHit) []kinematics.ContactHit {
	hits = hits[:0]
	dir := gamemath.Normalize(movement)
	if dir.Y >= 0 {
		return hits
	}
	dist := math.Max(shape.Y/-dir.Y, 0)
	if dist <= maxDistance {
		hits = append(hits, kinematics.ContactHit{Normal: gamemath.Up, Distance: dist})
	}
	return hits
})

type rig struct {
	input *ScriptedInput
	body  *kinematics.Body
	char  *Character
}

func newRig(caster kinematics.ShapeCaster, y float64) *rig {
	in := &ScriptedInput{}
	return &rig{
		input: in,
		body:  kinematics.NewBody(caster, gamemath.V(0, y), gamemath.V(1, 2), kinematics.DefaultConfig()),
		char:  New(DefaultConfig(), in, gravity),
	}
}

// frame runs one decision step followed by one physics tick.
func (r *rig) frame(dt float64) Events {
	ev := r.char.Update(r.body, dt)
	r.body.Step(gravity, dt)
	r.input.ClearEdges()
	return ev
}

func (r *rig) settle() {
	for i := 0; i < 5; i++ {
		r.frame(0.02)
	}
}

func TestHorizontalInputMovesCharacter(t *testing.T) {
	tests := []struct {
		name       string
		horizontal float64
		wantSign   float64
	}{
		{name: "right", horizontal: 1, wantSign: 1},
		{name: "left", horizontal: -1, wantSign: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(floor, 0.01)
			r.input.State.Horizontal = tt.horizontal

			start := r.body.Position.X
			for i := 0; i < 12; i++ {
				r.frame(0.02)
			}

			moved := r.body.Position.X - start
			if moved*tt.wantSign <= 0 {
				t.Fatalf("moved %f, want sign %v", moved, tt.wantSign)
			}
		})
	}
}

func TestMovingInAirStillTravels(t *testing.T) {
	r := newRig(nil, 20)
	r.input.State.Horizontal = 1

	for i := 0; i < 10; i++ {
		r.frame(0.02)
	}

	if r.body.Position.X <= 0 {
		t.Fatalf("airborne body did not move right: x=%f", r.body.Position.X)
	}
	if r.body.Position.Y >= 20 {
		t.Fatalf("airborne body did not fall: y=%f", r.body.Position.Y)
	}
}

func TestJumpFromGround(t *testing.T) {
	r := newRig(floor, 0.01)
	r.settle()
	if !r.body.IsGrounded() {
		t.Fatalf("body not grounded before jump")
	}

	r.input.State.JumpButtonDown = true
	ev := r.char.Update(r.body, 0.02)

	want := math.Sqrt(2 * 9.8 * 5)
	if math.Abs(r.body.Velocity.Y-want) > 1e-9 {
		t.Fatalf("jump velocity = %f, want %f", r.body.Velocity.Y, want)
	}
	if math.Abs(want-9.899494936611665) > 1e-9 {
		t.Fatalf("closed form drifted: %f", want)
	}
	if !ev.Has(EventJumped) {
		t.Fatalf("jump event missing: %b", ev)
	}

	r.body.Step(gravity, 0.02)
	if r.body.Position.Y <= 0.01 {
		t.Fatalf("body did not leave the ground: y=%f", r.body.Position.Y)
	}
}

func TestJumpIgnoredInAir(t *testing.T) {
	r := newRig(nil, 5)
	r.frame(0.02)
	before := r.body.Velocity.Y

	r.input.State.JumpButtonDown = true
	ev := r.char.Update(r.body, 0.02)

	if r.body.Velocity.Y != before {
		t.Fatalf("airborne jump changed velocity.y from %f to %f", before, r.body.Velocity.Y)
	}
	if ev.Has(EventJumped) {
		t.Fatalf("airborne jump reported")
	}
}

func TestJumpCancel(t *testing.T) {
	tests := []struct {
		name      string
		velocityY float64
		want      float64
		cancelled bool
	}{
		{name: "rising", velocityY: 4, want: 2, cancelled: true},
		{name: "apex", velocityY: 0, want: 0},
		{name: "falling", velocityY: -3, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(nil, 5)
			r.body.SetVelocityY(tt.velocityY)
			r.input.State.JumpButtonUp = true

			ev := r.char.Update(r.body, 0.02)

			if r.body.Velocity.Y != tt.want {
				t.Fatalf("velocity.y = %f, want %f", r.body.Velocity.Y, tt.want)
			}
			if ev.Has(EventJumpCancelled) != tt.cancelled {
				t.Fatalf("cancel event = %v, want %v", ev.Has(EventJumpCancelled), tt.cancelled)
			}
		})
	}
}

func TestJumpPressBeatsRelease(t *testing.T) {
	r := newRig(floor, 0.01)
	r.settle()

	r.input.Press(true, true, false)
	ev := r.char.Update(r.body, 0.02)

	if !ev.Has(EventJumped) || ev.Has(EventJumpCancelled) {
		t.Fatalf("events = %b, want jump only", ev)
	}
	if math.Abs(r.body.Velocity.Y-math.Sqrt(2*9.8*5)) > 1e-9 {
		t.Fatalf("jump was cut in the same frame: %f", r.body.Velocity.Y)
	}
}

func TestNegativeJumpHeightIsNoImpulse(t *testing.T) {
	r := newRig(floor, 0.01)
	r.char.Config.JumpHeight = -5
	r.settle()

	r.input.State.JumpButtonDown = true
	r.char.Update(r.body, 0.02)

	if r.body.Velocity.Y != 0 || math.IsNaN(r.body.Velocity.Y) {
		t.Fatalf("velocity.y = %f, want 0", r.body.Velocity.Y)
	}
}

func TestAirDashScenario(t *testing.T) {
	const dt = 0.0625
	r := newRig(nil, 100)

	r.input.State.DashButtonDown = true
	ev := r.frame(dt)
	if !ev.Has(EventDashStarted) {
		t.Fatalf("dash did not start: %b", ev)
	}
	if r.body.Velocity != gamemath.V(32, 0) {
		t.Fatalf("tick 1 velocity = %+v, want (32, 0)", r.body.Velocity)
	}

	for tick := 2; tick <= 4; tick++ {
		r.frame(dt)
		if r.body.Velocity != gamemath.V(32, 0) {
			t.Fatalf("tick %d velocity = %+v, want (32, 0)", tick, r.body.Velocity)
		}
		if r.char.DashState() != Dashing {
			t.Fatalf("tick %d: dash ended early", tick)
		}
	}

	ev = r.char.Update(r.body, dt)
	if !ev.Has(EventDashEnded) {
		t.Fatalf("dash did not end on tick 5: %b", ev)
	}
	if r.body.Velocity != gamemath.Zero {
		t.Fatalf("velocity after dash = %+v, want zero", r.body.Velocity)
	}
	if r.char.CanAirDash() {
		t.Fatalf("air dash still available after use")
	}
	if r.body.Position.Y != 100 {
		t.Fatalf("gravity applied during dash: y=%f", r.body.Position.Y)
	}
	if math.Abs(r.body.Position.X-8) > 1e-9 {
		t.Fatalf("dash distance = %f, want 8", r.body.Position.X)
	}
}

func TestAirDashNotRepeatableUntilLanding(t *testing.T) {
	r := newRig(floor, 30)
	r.char.Config.DashCooldown = 0

	r.input.State.DashButtonDown = true
	r.frame(0.05)
	for r.char.DashState() == Dashing {
		r.frame(0.05)
	}

	r.input.State.DashButtonDown = true
	if ev := r.frame(0.05); ev.Has(EventDashStarted) {
		t.Fatalf("second air dash started before landing")
	}

	for i := 0; i < 200 && !r.body.IsGrounded(); i++ {
		r.frame(0.05)
	}
	if !r.body.IsGrounded() {
		t.Fatalf("body never landed")
	}

	r.input.State.DashButtonDown = true
	r.frame(0.05)
	if !r.char.CanAirDash() {
		t.Fatalf("landing did not restore the air dash")
	}
}

func TestDashCooldown(t *testing.T) {
	const dt = 0.0625
	r := newRig(floor, 0.01)
	r.settle()

	r.input.State.DashButtonDown = true
	if ev := r.frame(dt); !ev.Has(EventDashStarted) {
		t.Fatalf("first dash rejected")
	}
	readyAt := r.char.DashReadyAt()
	if math.Abs(readyAt-(r.char.Clock()+2)) > 1e-9 {
		t.Fatalf("ready at %f, want clock+2", readyAt)
	}

	for i := 0; i < 200; i++ {
		r.input.State.DashButtonDown = true
		ev := r.frame(dt)
		if !ev.Has(EventDashStarted) {
			continue
		}
		if r.char.Clock() <= readyAt {
			t.Fatalf("dash restarted at %f before cooldown ended at %f", r.char.Clock(), readyAt)
		}
		return
	}
	t.Fatalf("dash never became available again")
}

func TestDashFollowsFacing(t *testing.T) {
	r := newRig(nil, 50)
	var flips []bool
	r.char.OnFlip = func(facingRight bool) { flips = append(flips, facingRight) }

	r.input.State.Horizontal = -0.005
	r.frame(0.02)
	if len(flips) != 0 || !r.char.FacingRight() {
		t.Fatalf("input inside the deadzone flipped facing")
	}

	r.input.State.Horizontal = -1
	ev := r.frame(0.02)
	if !ev.Has(EventFlipped) || r.char.FacingRight() {
		t.Fatalf("left input did not flip facing")
	}
	if len(flips) != 1 || flips[0] {
		t.Fatalf("flip callbacks = %v, want [false]", flips)
	}

	r.input.State.Horizontal = -1
	r.frame(0.02)
	if len(flips) != 1 {
		t.Fatalf("holding the same direction flipped again")
	}

	r.input.State.DashButtonDown = true
	r.char.Update(r.body, 0.02)
	if r.body.Velocity.X != -32 || r.body.Velocity.Y != 0 {
		t.Fatalf("dash velocity = %+v, want (-32, 0)", r.body.Velocity)
	}
	if r.body.State().TargetVelocity != 0 {
		t.Fatalf("target velocity written during dash: %f", r.body.State().TargetVelocity)
	}
}

func TestDashFrameSuppressesJump(t *testing.T) {
	r := newRig(floor, 0.01)
	r.settle()

	r.input.State.JumpButtonDown = true
	r.input.State.DashButtonDown = true
	ev := r.char.Update(r.body, 0.02)

	if !ev.Has(EventDashStarted) {
		t.Fatalf("dash did not start: %b", ev)
	}
	if ev.Has(EventJumped) {
		t.Fatalf("jump reported on a dash frame: %b", ev)
	}
	if r.body.Velocity != gamemath.V(32, 0) {
		t.Fatalf("velocity = %+v, want (32, 0)", r.body.Velocity)
	}
}

func TestDashWithZeroDurationIsNoop(t *testing.T) {
	r := newRig(nil, 50)
	r.char.Config.DashDuration = 0

	r.input.State.DashButtonDown = true
	ev := r.frame(0.02)

	if ev.Has(EventDashStarted) || r.char.DashState() != DashIdle {
		t.Fatalf("dash started with zero duration")
	}
	if !r.char.CanAirDash() {
		t.Fatalf("rejected dash consumed the air dash")
	}
}

func TestSnapshotRestore(t *testing.T) {
	r := newRig(nil, 50)
	r.input.State.Horizontal = -1
	r.input.State.DashButtonDown = true
	r.frame(0.05)

	saved := r.char.Snapshot()
	if !saved.Dashing || saved.FacingRight || saved.CanAirDash {
		t.Fatalf("unexpected snapshot %+v", saved)
	}

	other := New(DefaultConfig(), &ScriptedInput{}, gravity)
	var flipped []bool
	other.OnFlip = func(right bool) { flipped = append(flipped, right) }
	other.Restore(saved)

	if other.Snapshot() != saved {
		t.Fatalf("restored %+v, want %+v", other.Snapshot(), saved)
	}
	if len(flipped) != 1 || flipped[0] {
		t.Fatalf("restore did not report the facing change: %v", flipped)
	}
}

func TestSampleNilInput(t *testing.T) {
	if got := Sample(nil); got != (InputState{}) {
		t.Fatalf("Sample(nil) = %+v, want zero", got)
	}

	c := New(DefaultConfig(), nil, gravity)
	b := kinematics.NewBody(nil, gamemath.Zero, gamemath.V(1, 1), kinematics.DefaultConfig())
	if ev := c.Update(b, 0.02); ev != 0 {
		t.Fatalf("nil input produced events %b", ev)
	}
}
