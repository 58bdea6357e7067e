package factory

import (
	"github.com/automoto/slopedash/archetypes"
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation creates the fixed-step simulation over level using the
// physics config.
func CreateSimulation(ecs *ecs.ECS, level *world.Level) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{
		Simulation: world.NewSimulation(level, cfg.Physics.Gravity, cfg.Physics.FixedStep, cfg.Physics.MaxSubSteps),
	})
	return entry
}
