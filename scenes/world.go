package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/slopedash/assets"
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/systems"
	"github.com/automoto/slopedash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs    *ecs.ECS
	levels []assets.Level
	once   sync.Once
}

// NewPlatformerScene creates a scene playing one of levels. The level is
// picked by cfg.Debug.Level, defaulting to the first.
func NewPlatformerScene(levels []assets.Level) *PlatformerScene {
	return &PlatformerScene{levels: levels}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	world := donburi.NewWorld()
	ecs := ecs.NewECS(world)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Decide once per frame, then run the fixed physics ticks
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDashTrails))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTriggers))

	// Snapshots can be saved and loaded while paused
	ecs.AddSystem(systems.UpdatePersistence)
	ecs.AddSystem(systems.UpdateNetSnapshots)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDashTrails)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	levelEntry, err := factory.CreateLevel(ps.ecs, ps.levels, cfg.Debug.Level)
	if err != nil {
		panic(err)
	}
	level := components.Level.Get(levelEntry).Level

	factory.CreateSpace(ps.ecs, level)
	factory.CreateLevelObjects(ps.ecs, level)
	factory.CreateCamera(ps.ecs)
	factory.CreateSimulation(ps.ecs, level)

	if _, err := factory.CreatePlayer(ps.ecs, 0, systems.NewDeviceInput(ps.ecs)); err != nil {
		panic(fmt.Errorf("spawn player: %w", err))
	}
}
