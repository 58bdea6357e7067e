package systems

import (
	"log"

	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/yohamta/donburi/ecs"
)

// statusFrames is how long a status message stays on the HUD.
const statusFrames = 120

// GetOrCreateSettings returns the singleton Settings component, creating
// it from the saved settings if needed. The debug flag forces colliders on.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, initialSettings())
	}
	return components.Settings.Get(entry)
}

func initialSettings() components.SettingsData {
	settings := components.SettingsData{ShowHUD: true}

	saved, err := LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	if saved != nil {
		settings.Debug = saved.ShowColliders
		settings.ShowHUD = saved.ShowHUD
	}

	if cfg.Debug.ShowColliders {
		settings.Debug = true
	}
	return settings
}

// UpdateSettings handles the debug overlay and HUD toggles and expires
// status messages.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		changed = true
	}
	if changed {
		saved := &SavedSettings{ShowColliders: settings.Debug, ShowHUD: settings.ShowHUD}
		if err := SaveSettings(saved); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}

	if settings.StatusTimer > 0 {
		settings.StatusTimer--
		if settings.StatusTimer == 0 {
			settings.Status = ""
		}
	}
}

func setStatus(e *ecs.ECS, msg string) {
	settings := GetOrCreateSettings(e)
	settings.Status = msg
	settings.StatusTimer = statusFrames
}
