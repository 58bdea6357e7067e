package factory

import (
	"github.com/automoto/slopedash/archetypes"
	"github.com/automoto/slopedash/components"
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace exposes the level's collision space as an entity.
func CreateSpace(ecs *ecs.ECS, level *world.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, level.Space)
	return space
}
