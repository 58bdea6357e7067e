package messages

// PlayerInput is sent from client to server each frame with the player's input state.
// Button edges are latched by the server until its next decision step.
type PlayerInput struct {
	Sequence   uint32 // Incrementing ID, stale inputs are dropped
	Horizontal float64
	Vertical   float64
	JumpDown   bool
	JumpUp     bool
	DashDown   bool
}
