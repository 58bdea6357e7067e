package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers sends players that touched a deadzone back to their spawn.
func UpdateTriggers(e *ecs.ECS) {
	sim := getSimulation(e)
	if sim == nil {
		return
	}

	for _, p := range sim.ApplyDeadzones() {
		log.Printf("Player fell into a deadzone, respawning at (%.2f, %.2f)", p.Actor.Spawn.X, p.Actor.Spawn.Y)
		setStatus(e, "Respawned")
	}
}
