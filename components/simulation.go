package components

import (
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi"
)

type SimulationData struct {
	*world.Simulation
	FrameTicks int // Physics ticks run during the latest frame
}

var Simulation = donburi.NewComponentType[SimulationData]()
