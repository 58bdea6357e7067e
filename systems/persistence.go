package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/automoto/slopedash/world"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// gdata item keys
const (
	snapshotItem = "actor-snapshot"
	settingsItem = "settings"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowColliders bool `json:"showColliders"`
	ShowHUD       bool `json:"showHUD"`
}

// ActorSnapshot is the saved state of the first player.
type ActorSnapshot struct {
	Level     string              `json:"level"`
	Body      kinematics.State    `json:"body"`
	Character controller.Snapshot `json:"character"`
}

// itemStore is the part of *gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for snapshot storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "slopedash",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveSnapshot writes s to disk. It is a no-op without a store.
func SaveSnapshot(s *ActorSnapshot) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	if err := store.SaveItem(snapshotItem, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the saved snapshot. It returns nil, nil when nothing
// has been saved yet.
func LoadSnapshot() (*ActorSnapshot, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(snapshotItem)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s ActorSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &s, nil
}

// CaptureSnapshot records p's body and character state.
func CaptureSnapshot(level string, p *world.Player) *ActorSnapshot {
	return &ActorSnapshot{
		Level:     level,
		Body:      p.Actor.Body.State(),
		Character: p.Character.Snapshot(),
	}
}

var errLevelMismatch = errors.New("snapshot belongs to another level")

// ApplySnapshot restores p from s. Snapshots taken on another level are
// rejected.
func ApplySnapshot(level string, p *world.Player, s *ActorSnapshot) error {
	if s.Level != level {
		return fmt.Errorf("%w: %q", errLevelMismatch, s.Level)
	}
	p.Actor.Body.Restore(s.Body)
	p.Actor.Sync()
	p.Character.Restore(s.Character)
	return nil
}

// UpdatePersistence saves or restores the first player's snapshot on
// request.
func UpdatePersistence(e *ecs.ECS) {
	input := getOrCreateInput(e)
	save := GetAction(input, cfg.ActionSaveSnapshot).JustPressed
	load := GetAction(input, cfg.ActionLoadSnapshot).JustPressed
	if !save && !load {
		return
	}

	sim := getSimulation(e)
	levelEntry, ok := components.Level.First(e.World)
	if sim == nil || !ok || len(sim.Players) == 0 {
		return
	}
	levelName := components.Level.Get(levelEntry).Name
	player := sim.Players[0]

	if save {
		if err := SaveSnapshot(CaptureSnapshot(levelName, player)); err != nil {
			log.Printf("Warning: Could not save snapshot: %v", err)
			setStatus(e, "Save failed")
			return
		}
		setStatus(e, "Snapshot saved")
		return
	}

	snapshot, err := LoadSnapshot()
	if err != nil {
		log.Printf("Warning: Could not load snapshot: %v", err)
		setStatus(e, "Load failed")
		return
	}
	if snapshot == nil {
		setStatus(e, "No snapshot saved")
		return
	}
	if err := ApplySnapshot(levelName, player, snapshot); err != nil {
		log.Printf("Warning: Could not apply snapshot: %v", err)
		setStatus(e, "Snapshot is for another level")
		return
	}
	setStatus(e, "Snapshot loaded")
}
