package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the fixed-step accumulator by one frame and runs
// the physics ticks it pays for. Bodies mirror themselves into the
// collision space as they move.
func UpdatePhysics(e *ecs.ECS) {
	sim := getSimulation(e)
	if sim == nil {
		return
	}
	sim.FrameTicks = sim.Advance(frameDt())
}
