package server

import (
	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/messages"
)

// RemoteInput feeds a character from network messages. Axes hold the latest
// value, button edges are kept until Consume so a press arriving between
// ticks is not lost.
type RemoteInput struct {
	state    controller.InputState
	sequence uint32
	received bool
}

var _ controller.Input = (*RemoteInput)(nil)

func (r *RemoteInput) Horizontal() float64  { return r.state.Horizontal }
func (r *RemoteInput) Vertical() float64    { return r.state.Vertical }
func (r *RemoteInput) JumpButtonDown() bool { return r.state.JumpButtonDown }
func (r *RemoteInput) JumpButtonUp() bool   { return r.state.JumpButtonUp }
func (r *RemoteInput) DashButtonDown() bool { return r.state.DashButtonDown }

// Apply merges msg into the pending state. It reports false for messages
// older than the last one applied.
func (r *RemoteInput) Apply(msg messages.PlayerInput) bool {
	if r.received && msg.Sequence <= r.sequence {
		return false
	}
	r.received = true
	r.sequence = msg.Sequence

	r.state.Horizontal = gamemath.ClampSpeed(msg.Horizontal, 1)
	r.state.Vertical = gamemath.ClampSpeed(msg.Vertical, 1)
	r.state.JumpButtonDown = r.state.JumpButtonDown || msg.JumpDown
	r.state.JumpButtonUp = r.state.JumpButtonUp || msg.JumpUp
	r.state.DashButtonDown = r.state.DashButtonDown || msg.DashDown
	return true
}

// Consume clears the latched button edges after a decision step.
func (r *RemoteInput) Consume() {
	r.state.JumpButtonDown = false
	r.state.JumpButtonUp = false
	r.state.DashButtonDown = false
}
