package kinematics

import "github.com/automoto/slopedash/shared/gamemath"

// State is the persistable part of a Body.
type State struct {
	Position       gamemath.Vec2 `json:"position"`
	Velocity       gamemath.Vec2 `json:"velocity"`
	GroundNormal   gamemath.Vec2 `json:"groundNormal"`
	Grounded       bool          `json:"grounded"`
	TargetVelocity float64       `json:"targetVelocityX"`
}

// State captures the body's dynamic fields.
func (b *Body) State() State {
	return State{
		Position:       b.Position,
		Velocity:       b.Velocity,
		GroundNormal:   b.GroundNormal,
		Grounded:       b.Grounded,
		TargetVelocity: b.targetVelocity.X,
	}
}

// Restore overwrites the body's dynamic fields from s. A zero ground normal
// is replaced with Up so horizontal movement keeps working.
func (b *Body) Restore(s State) {
	b.Position = s.Position
	b.Velocity = s.Velocity
	b.GroundNormal = s.GroundNormal
	if b.GroundNormal == gamemath.Zero {
		b.GroundNormal = gamemath.Up
	}
	b.Grounded = s.Grounded
	b.targetVelocity.X = s.TargetVelocity
	b.forced = false
}
