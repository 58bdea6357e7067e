// Package controller turns per-frame input into movement intent for a
// kinematic body: directional run, variable-height jump and a
// cooldown-gated dash.
package controller

import (
	"github.com/automoto/slopedash/shared/gamemath"
)

// facingDeadzone is the horizontal input needed to turn around.
const facingDeadzone = 0.01

// Body is the mutation contract a Character drives each frame.
// *kinematics.Body satisfies it.
type Body interface {
	IsGrounded() bool
	CurrentVelocity() gamemath.Vec2
	GravityScale() float64
	SetVelocity(v gamemath.Vec2)
	SetVelocityY(y float64)
	ForceVelocity(v gamemath.Vec2)
	SetTargetVelocityX(x float64)
}

// Config holds the character tuning values.
type Config struct {
	MoveSpeed        float64
	JumpHeight       float64
	JumpCancelFactor float64
	DashSpeed        float64
	DashCooldown     float64 // seconds between dash starts
	DashDuration     float64 // seconds
}

// DefaultConfig returns the stock character tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:        8,
		JumpHeight:       5,
		JumpCancelFactor: 0.5,
		DashSpeed:        32,
		DashCooldown:     2,
		DashDuration:     0.25,
	}
}

// DashState is the dash state machine's current state.
type DashState int

const (
	DashIdle DashState = iota
	Dashing
)

func (s DashState) String() string {
	if s == Dashing {
		return "dashing"
	}
	return "idle"
}

// Events reports what happened during one Update.
type Events uint8

const (
	EventJumped Events = 1 << iota
	EventJumpCancelled
	EventDashStarted
	EventDashEnded
	EventFlipped
)

// Has reports whether all bits of e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Character owns the movement state of one player-controlled actor.
type Character struct {
	Config  Config
	Input   Input
	Gravity gamemath.Vec2

	// OnFlip is called whenever the facing direction toggles.
	OnFlip func(facingRight bool)

	facingRight   bool
	canAirDash    bool
	dashState     DashState
	dashDirection float64
	dashReadyAt   float64
	dashRemaining float64
	clock         float64
	last          InputState
}

// New creates a character facing right with its air dash available.
func New(cfg Config, input Input, gravity gamemath.Vec2) *Character {
	return &Character{
		Config:      cfg,
		Input:       input,
		Gravity:     gravity,
		facingRight: true,
		canAirDash:  true,
	}
}

// FacingRight reports the current facing direction.
func (c *Character) FacingRight() bool { return c.facingRight }

// CanAirDash reports whether a dash may start while airborne.
func (c *Character) CanAirDash() bool { return c.canAirDash }

// DashState returns the dash state machine's state.
func (c *Character) DashState() DashState { return c.dashState }

// DashRemaining returns the time left in the current dash.
func (c *Character) DashRemaining() float64 { return c.dashRemaining }

// DashReadyAt returns the clock time after which a dash may start.
func (c *Character) DashReadyAt() float64 { return c.dashReadyAt }

// Clock returns the accumulated decision time.
func (c *Character) Clock() float64 { return c.clock }

// LastInput returns the input sampled by the latest Update.
func (c *Character) LastInput() InputState { return c.last }

// Update runs one decision step of dt seconds against body. It must run
// before the physics tick that consumes its output.
func (c *Character) Update(body Body, dt float64) Events {
	in := Sample(c.Input)
	c.last = in
	c.clock += dt

	grounded := body.IsGrounded()
	if grounded {
		c.canAirDash = true
	}

	var ev Events
	if c.updateFacing(in.Horizontal) {
		ev |= EventFlipped
	}
	ev |= c.handleJump(body, in, grounded)

	dashEv, overridden := c.handleDash(body, in, grounded, dt)
	ev |= dashEv
	if overridden {
		// The dash overwrites any jump impulse from this frame.
		ev &^= EventJumped | EventJumpCancelled
		body.SetTargetVelocityX(0)
		return ev
	}

	body.SetTargetVelocityX(in.Horizontal * c.Config.MoveSpeed)
	return ev
}

// updateFacing flips the facing direction when horizontal input is
// decisively opposite to it.
func (c *Character) updateFacing(horizontal float64) bool {
	flip := horizontal < -facingDeadzone
	if !c.facingRight {
		flip = horizontal > facingDeadzone
	}
	if !flip {
		return false
	}

	c.facingRight = !c.facingRight
	if c.OnFlip != nil {
		c.OnFlip(c.facingRight)
	}
	return true
}

// handleJump applies a jump impulse when grounded, or cuts an ascent short
// when the button is released. A press wins over a release in one frame.
func (c *Character) handleJump(body Body, in InputState, grounded bool) Events {
	if in.JumpButtonDown && grounded {
		gravityMagnitude := -c.Gravity.Y
		body.SetVelocityY(gamemath.JumpVelocity(gravityMagnitude, body.GravityScale(), c.Config.JumpHeight))
		return EventJumped
	}

	if in.JumpButtonUp {
		if v := body.CurrentVelocity(); v.Y > 0 {
			body.SetVelocityY(v.Y * c.Config.JumpCancelFactor)
			return EventJumpCancelled
		}
	}
	return 0
}

// handleDash advances the dash state machine. It reports whether the dash
// owns the body's velocity this frame.
func (c *Character) handleDash(body Body, in InputState, grounded bool, dt float64) (Events, bool) {
	var ev Events

	if c.dashState == DashIdle {
		if !c.canStartDash(in, grounded) {
			return 0, false
		}

		c.dashReadyAt = c.clock + c.Config.DashCooldown
		c.dashRemaining = c.Config.DashDuration
		c.dashDirection = c.facingSign()
		c.dashState = Dashing
		if !grounded {
			c.canAirDash = false
		}
		ev |= EventDashStarted
	}

	if c.dashRemaining <= 0 {
		c.dashState = DashIdle
		c.dashRemaining = 0
		body.SetVelocity(gamemath.Zero)
		return ev | EventDashEnded, true
	}

	c.dashRemaining -= dt
	body.ForceVelocity(gamemath.V(c.dashDirection*c.Config.DashSpeed, 0))
	return ev, true
}

func (c *Character) canStartDash(in InputState, grounded bool) bool {
	if !in.DashButtonDown || c.Config.DashDuration <= 0 {
		return false
	}
	if c.clock <= c.dashReadyAt {
		return false
	}
	return grounded || c.canAirDash
}

func (c *Character) facingSign() float64 {
	if c.facingRight {
		return 1
	}
	return -1
}
