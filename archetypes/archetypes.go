package archetypes

import (
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/netcomponents"
	"github.com/automoto/slopedash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Sprite,
		components.DashTrail,
		netcomponents.NetBody,
		netcomponents.NetCharacter,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Object,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
