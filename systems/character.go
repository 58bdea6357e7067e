package systems

import (
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDt is the decision-step length: one ebiten tick.
func frameDt() float64 {
	return 1 / float64(cfg.C.TPS)
}

// getSimulation returns the simulation singleton, or nil before the level
// has been built.
func getSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// UpdateCharacters runs every character's decision step: facing, jump and
// dash. Must run BEFORE UpdatePhysics.
func UpdateCharacters(e *ecs.ECS) {
	sim := getSimulation(e)
	if sim == nil {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionRespawn).JustPressed {
		for _, p := range sim.Players {
			p.Respawn()
		}
	}

	sim.Decide(frameDt())

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Events.Has(controller.EventDashStarted) {
			// Drop the first afterimage on the next physics tick
			components.DashTrail.Get(entry).SinceLast = cfg.DashTrail.Spacing
		}
	})
}
