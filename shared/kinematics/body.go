package kinematics

import (
	"github.com/automoto/slopedash/shared/gamemath"
)

const hitBufferSize = 16

// Config holds the per-body tuning values.
type Config struct {
	GravityScale     float64 // multiplier on world gravity
	MinGroundNormalY float64 // contacts with a steeper normal are not ground
	MinMoveDistance  float64 // movement at or below this skips casting
	ShellRadius      float64 // skin kept between the body and any surface
}

// DefaultConfig returns the stock body tuning. A MinGroundNormalY of 0.65
// makes slopes steeper than roughly 49 degrees unwalkable.
func DefaultConfig() Config {
	return Config{
		GravityScale:     1,
		MinGroundNormalY: 0.65,
		MinMoveDistance:  0.001,
		ShellRadius:      0.01,
	}
}

// Body is a kinematic actor: it owns its position and velocity and resolves
// movement against the world through a ShapeCaster.
type Body struct {
	Position     gamemath.Vec2
	Velocity     gamemath.Vec2
	GroundNormal gamemath.Vec2
	Grounded     bool
	Size         gamemath.Vec2
	Config       Config
	Filter       Filter

	caster         ShapeCaster
	targetVelocity gamemath.Vec2
	forced         bool
	forcedVelocity gamemath.Vec2
	hits           []ContactHit
}

// NewBody creates a body at position with the given collider size.
func NewBody(caster ShapeCaster, position, size gamemath.Vec2, cfg Config) *Body {
	if caster == nil {
		caster = NoCollisions
	}
	return &Body{
		Position:     position,
		GroundNormal: gamemath.Up,
		Size:         size,
		Config:       cfg,
		Filter:       DefaultFilter(),
		caster:       caster,
		hits:         make([]ContactHit, 0, hitBufferSize),
	}
}

// Shape returns the body's collider at its current position.
func (b *Body) Shape() AABB {
	return AABB{X: b.Position.X, Y: b.Position.Y, W: b.Size.X, H: b.Size.Y}
}

// IsGrounded reports whether a walkable contact was found during the last tick.
func (b *Body) IsGrounded() bool {
	return b.Grounded
}

// SetTargetVelocityX sets the horizontal velocity the next tick will use.
func (b *Body) SetTargetVelocityX(x float64) {
	b.targetVelocity.X = x
}

// CurrentVelocity returns the body's velocity.
func (b *Body) CurrentVelocity() gamemath.Vec2 {
	return b.Velocity
}

// GravityScale returns the multiplier this body applies to world gravity.
func (b *Body) GravityScale() float64 {
	return b.Config.GravityScale
}

// SetVelocity assigns the velocity directly and releases a forced
// velocity. Gravity applies again from the next tick.
func (b *Body) SetVelocity(v gamemath.Vec2) {
	b.Velocity = v
	b.forced = false
}

// SetVelocityY assigns only the vertical velocity.
func (b *Body) SetVelocityY(y float64) {
	b.Velocity.Y = y
}

// ForceVelocity pins the velocity at v for every tick until SetVelocity or
// Restore releases it, bypassing gravity and the target velocity.
// Collisions still apply within each tick.
func (b *Body) ForceVelocity(v gamemath.Vec2) {
	b.Velocity = v
	b.forcedVelocity = v
	b.forced = true
}

// Forced reports whether a forced velocity is pinned.
func (b *Body) Forced() bool {
	return b.forced
}

// Step advances the body by dt seconds under gravity.
func (b *Body) Step(gravity gamemath.Vec2, dt float64) {
	b.Grounded = false

	if b.forced {
		b.Velocity = b.forcedVelocity
	} else {
		b.Velocity = gamemath.Add(b.Velocity, gamemath.Scale(gravity, b.Config.GravityScale*dt))
		b.Velocity.X = b.targetVelocity.X
	}

	delta := gamemath.Scale(b.Velocity, dt)

	// Horizontal first, along the last known ground slope, then vertical.
	b.move(gamemath.Scale(gamemath.Tangent(b.GroundNormal), delta.X), false)
	b.move(gamemath.Vec2{X: 0, Y: delta.Y}, true)
}

// move slides the body along movement, stopping a shell radius short of the
// nearest contact and removing velocity that points into each surface.
func (b *Body) move(movement gamemath.Vec2, yMovement bool) {
	distance := gamemath.Length(movement)

	if distance > b.Config.MinMoveDistance {
		castDistance := distance + b.Config.ShellRadius
		b.hits = b.caster.Cast(b.Shape(), movement, b.Filter, castDistance, b.hits[:0])

		for _, hit := range b.hits {
			normal := hit.Normal
			if normal.Y > b.Config.MinGroundNormalY {
				b.Grounded = true

				if yMovement {
					b.GroundNormal = normal
					// Ground contacts only cancel vertical velocity.
					normal.X = 0
				}
			}

			b.Velocity = gamemath.RemoveInbound(b.Velocity, normal)

			if modified := hit.Distance - b.Config.ShellRadius; modified < distance {
				distance = modified
			}
		}
	}

	b.Position = gamemath.Add(b.Position, gamemath.Scale(gamemath.Normalize(movement), distance))
}
