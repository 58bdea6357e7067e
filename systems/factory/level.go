package factory

import (
	"fmt"

	"github.com/automoto/slopedash/archetypes"
	"github.com/automoto/slopedash/assets"
	"github.com/automoto/slopedash/components"
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the level whose name matches, falling back to the
// first level when name is empty or unknown.
func CreateLevel(ecs *ecs.ECS, levels []assets.Level, name string) (*donburi.Entry, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels loaded")
	}

	levelIndex := 0
	for i, l := range levels {
		if l.Name == name {
			levelIndex = i
			break
		}
	}
	return CreateLevelAtIndex(ecs, levels, levelIndex), nil
}

func CreateLevelAtIndex(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	loaded := levels[levelIndex]

	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Level:      world.NewLevel(loaded.Data),
		Name:       loaded.Name,
		LevelIndex: levelIndex,
		Names:      names,
		Background: loaded.Background,
	})
	return level
}
