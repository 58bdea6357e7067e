package controller

// Input is the per-frame input capability a Character polls. Production
// code backs it with device polling; tests use ScriptedInput.
type Input interface {
	Vertical() float64
	Horizontal() float64
	JumpButtonDown() bool
	JumpButtonUp() bool
	DashButtonDown() bool
}

// InputState is one frame's sample of an Input.
type InputState struct {
	Vertical       float64
	Horizontal     float64
	JumpButtonDown bool
	JumpButtonUp   bool
	DashButtonDown bool
}

// Sample reads every signal from in exactly once.
func Sample(in Input) InputState {
	if in == nil {
		return InputState{}
	}
	return InputState{
		Vertical:       in.Vertical(),
		Horizontal:     in.Horizontal(),
		JumpButtonDown: in.JumpButtonDown(),
		JumpButtonUp:   in.JumpButtonUp(),
		DashButtonDown: in.DashButtonDown(),
	}
}

// ScriptedInput is an Input with directly assigned values.
type ScriptedInput struct {
	State InputState
}

func (s *ScriptedInput) Vertical() float64    { return s.State.Vertical }
func (s *ScriptedInput) Horizontal() float64  { return s.State.Horizontal }
func (s *ScriptedInput) JumpButtonDown() bool { return s.State.JumpButtonDown }
func (s *ScriptedInput) JumpButtonUp() bool   { return s.State.JumpButtonUp }
func (s *ScriptedInput) DashButtonDown() bool { return s.State.DashButtonDown }

// Press sets the one-frame edge signals for the next sample.
func (s *ScriptedInput) Press(jumpDown, jumpUp, dashDown bool) {
	s.State.JumpButtonDown = jumpDown
	s.State.JumpButtonUp = jumpUp
	s.State.DashButtonDown = dashDown
}

// ClearEdges resets the one-frame signals, leaving the axes alone.
func (s *ScriptedInput) ClearEdges() {
	s.Press(false, false, false)
}
