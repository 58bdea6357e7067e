package netcomponents

import (
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/yohamta/donburi"
)

// NetBodyData is the synced kinematic state of an actor in world units.
type NetBodyData struct {
	X, Y           float64
	SpeedX, SpeedY float64
	NormalX        float64
	NormalY        float64
	Grounded       bool
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates position and velocity. The ground contact is
// discrete and taken from whichever end is closer.
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	out := to
	if t < 0.5 {
		out = from
	}
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	out.SpeedX = from.SpeedX + (to.SpeedX-from.SpeedX)*t
	out.SpeedY = from.SpeedY + (to.SpeedY-from.SpeedY)*t
	return &out
}

// BodyFromState copies the synced fields out of a body state.
func BodyFromState(s kinematics.State) NetBodyData {
	return NetBodyData{
		X:        s.Position.X,
		Y:        s.Position.Y,
		SpeedX:   s.Velocity.X,
		SpeedY:   s.Velocity.Y,
		NormalX:  s.GroundNormal.X,
		NormalY:  s.GroundNormal.Y,
		Grounded: s.Grounded,
	}
}
