package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

func restoreTuning(t *testing.T) {
	t.Helper()
	saved := CurrentTuning()
	t.Cleanup(func() {
		Physics = saved.Physics
		Player = saved.Player
		Camera = saved.Camera
	})
}

func TestLoadTuningOverlaysValues(t *testing.T) {
	restoreTuning(t)
	before := CurrentTuning()

	path := writeTuning(t, `physics:
  gravity:
    x: 0
    y: -20
  maxSubSteps: 8
player:
  dashSpeed: 40
  jumpHeight: 3
`)
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	if Physics.Gravity.Y != -20 || Physics.Gravity.X != 0 {
		t.Errorf("Gravity = %+v, want (0, -20)", Physics.Gravity)
	}
	if Physics.MaxSubSteps != 8 {
		t.Errorf("MaxSubSteps = %d, want 8", Physics.MaxSubSteps)
	}
	if Player.DashSpeed != 40 || Player.JumpHeight != 3 {
		t.Errorf("Player = %+v", Player)
	}

	// Keys absent from the file keep their values.
	if Physics.ShellRadius != before.Physics.ShellRadius {
		t.Errorf("ShellRadius = %v, want %v", Physics.ShellRadius, before.Physics.ShellRadius)
	}
	if Player.MoveSpeed != before.Player.MoveSpeed {
		t.Errorf("MoveSpeed = %v, want %v", Player.MoveSpeed, before.Player.MoveSpeed)
	}
	if Camera != before.Camera {
		t.Errorf("Camera = %+v, want %+v", Camera, before.Camera)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "malformed yaml", content: "physics: [1, 2"},
		{name: "zero fixed step", content: "physics:\n  fixedStep: 0\n"},
		{name: "no sub steps", content: "physics:\n  maxSubSteps: 0\n"},
		{name: "ground normal out of range", content: "physics:\n  minGroundNormalY: 1.5\n"},
		{name: "negative width", content: "player:\n  width: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreTuning(t)
			before := CurrentTuning()

			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeTuning(t, tt.content)
			}

			if err := LoadTuning(path); err == nil {
				t.Fatalf("expected error")
			}
			if CurrentTuning() != before {
				t.Errorf("globals changed after failed load")
			}
		})
	}
}

func TestConfigBuilders(t *testing.T) {
	restoreTuning(t)
	Physics.ShellRadius = 0.02
	Player.DashDuration = 0.5

	if got := KinematicsConfig().ShellRadius; got != 0.02 {
		t.Errorf("KinematicsConfig().ShellRadius = %v, want 0.02", got)
	}
	if got := CharacterConfig().DashDuration; got != 0.5 {
		t.Errorf("CharacterConfig().DashDuration = %v, want 0.5", got)
	}
	if size := PlayerSize(); size.X != Player.Width || size.Y != Player.Height {
		t.Errorf("PlayerSize() = %+v", size)
	}
}
