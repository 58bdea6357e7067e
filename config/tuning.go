package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of the configuration that can be overridden from a
// YAML file. Keys left out of the file keep their current values.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
}

// CurrentTuning returns the active tuning values.
func CurrentTuning() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Camera:  Camera,
	}
}

// LoadTuning overlays the YAML file at path onto the global Physics, Player
// and Camera configs. The globals are left untouched when an error is
// returned.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	Physics = t.Physics
	Player = t.Player
	Camera = t.Camera
	return nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	if t.Physics.FixedStep <= 0 {
		return fmt.Errorf("physics.fixedStep must be positive, got %v", t.Physics.FixedStep)
	}
	if t.Physics.MaxSubSteps < 1 {
		return fmt.Errorf("physics.maxSubSteps must be at least 1, got %d", t.Physics.MaxSubSteps)
	}
	if t.Physics.MinGroundNormalY < 0 || t.Physics.MinGroundNormalY > 1 {
		return fmt.Errorf("physics.minGroundNormalY must be in [0, 1], got %v", t.Physics.MinGroundNormalY)
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", t.Player.Width, t.Player.Height)
	}
	return nil
}
