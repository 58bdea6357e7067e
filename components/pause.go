package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. StepFrame lets gameplay systems run for
// the current frame only while paused.
type PauseData struct {
	IsPaused  bool
	StepFrame bool
}

var Pause = donburi.NewComponentType[PauseData]()
