package systems

import (
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and single-frame stepping.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	pause.StepFrame = false

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		return
	}

	if pause.IsPaused && GetAction(input, cfg.ActionFrameStep).JustPressed {
		pause.StepFrame = true
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	titleWidth := text.BoundString(fonts.HUD.Get(), title).Dx()
	text.Draw(screen, title, fonts.HUD.Get(), (width-titleWidth)/2, height/2, cfg.White)

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintWidth := text.BoundString(fonts.Debug.Get(), hint).Dx()
	text.Draw(screen, hint, fonts.Debug.Get(), (width-hintWidth)/2, height-12, cfg.White)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Start: Resume   LB: Step frame"
	}
	return "Esc: Resume   .: Step frame"
}

// WithPauseCheck wraps a system to skip execution when paused, unless a
// single frame step was requested.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.StepFrame {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
