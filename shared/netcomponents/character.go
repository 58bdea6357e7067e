package netcomponents

import (
	"math"

	"github.com/automoto/slopedash/shared/controller"
	"github.com/yohamta/donburi"
)

type NetCharacterData struct {
	Direction     int // -1 left, 1 right
	Dashing       bool
	CanAirDash    bool
	DashRemaining float64
	DashCooldown  float64 // seconds until the next dash may start
	Tick          uint64  // Physics tick the state was captured on
}

var NetCharacter = donburi.NewComponentType[NetCharacterData]()

// CharacterFromSnapshot converts a character snapshot taken on tick. The
// cooldown is sent as time remaining since clocks are per character.
func CharacterFromSnapshot(s controller.Snapshot, tick uint64) NetCharacterData {
	direction := 1
	if !s.FacingRight {
		direction = -1
	}
	return NetCharacterData{
		Direction:     direction,
		Dashing:       s.Dashing,
		CanAirDash:    s.CanAirDash,
		DashRemaining: s.DashRemaining,
		DashCooldown:  math.Max(0, s.DashReadyAt-s.Clock),
		Tick:          tick,
	}
}
