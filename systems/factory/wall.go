package factory

import (
	"github.com/automoto/slopedash/archetypes"
	"github.com/automoto/slopedash/collision"
	"github.com/automoto/slopedash/components"
	"github.com/automoto/slopedash/tags"
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelObjects creates an entity for every static object in the
// level's space so renderers can query walls, ramps and triggers by tag.
func CreateLevelObjects(ecs *ecs.ECS, level *world.Level) {
	for _, obj := range level.Space.Objects() {
		switch {
		case obj.HasTags(tags.ResolvRamp):
			ramp := archetypes.Ramp.Spawn(ecs)
			components.Object.SetValue(ramp, components.ObjectData{Object: obj, SlopeType: collision.SlopeType(obj)})
			obj.Data = ramp // Link for O(1) lookup
		case obj.HasTags(tags.ResolvSolid):
			wall := archetypes.Wall.Spawn(ecs)
			components.Object.SetValue(wall, components.ObjectData{Object: obj})
			obj.Data = wall
		case obj.HasTags(tags.ResolvTrigger):
			// obj.Data keeps the trigger rect for overlap queries
			trigger := archetypes.Trigger.Spawn(ecs)
			components.Object.SetValue(trigger, components.ObjectData{Object: obj})
		}
	}
}
