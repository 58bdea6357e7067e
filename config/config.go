package config

import (
	"image/color"

	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// PhysicsConfig contains the world physics and collision tuning. Distances
// are in world units, times in seconds.
type PhysicsConfig struct {
	Gravity          math.Vec2 `yaml:"gravity"`
	GravityScale     float64   `yaml:"gravityScale"`
	MinGroundNormalY float64   `yaml:"minGroundNormalY"` // cos of the steepest walkable slope
	MinMoveDistance  float64   `yaml:"minMoveDistance"`
	ShellRadius      float64   `yaml:"shellRadius"`

	// Fixed-step integration
	FixedStep   float64 `yaml:"fixedStep"`
	MaxSubSteps int     `yaml:"maxSubSteps"` // ticks run per frame at most
}

// PlayerConfig contains the character's movement tuning.
type PlayerConfig struct {
	MoveSpeed        float64 `yaml:"moveSpeed"`
	JumpHeight       float64 `yaml:"jumpHeight"`
	JumpCancelFactor float64 `yaml:"jumpCancelFactor"` // vertical speed kept when jump is released
	DashSpeed        float64 `yaml:"dashSpeed"`
	DashCooldown     float64 `yaml:"dashCooldown"`
	DashDuration     float64 `yaml:"dashDuration"`

	// Collider size in world units
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 `yaml:"followSmoothing"`    // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX float64 `yaml:"lookAheadDistanceX"` // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 `yaml:"lookAheadSmoothing"` // How fast look-ahead offset changes (0.0-1.0)
}

// DashTrailConfig contains the dash afterimage effect configuration
type DashTrailConfig struct {
	Duration   float32 // seconds an afterimage takes to fade
	StartAlpha float32
	Spacing    int // ticks between afterimages while dashing
}

// UIConfig contains HUD configuration
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	HUDMargin     int

	BackgroundColor color.RGBA
	SolidColor      color.RGBA
	RampColor       color.RGBA
	TriggerColor    color.RGBA
	PlayerColor     color.RGBA
	DashColor       color.RGBA
	NormalColor     color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool   // Outline collision objects on startup
	Level         string // Level name to load; empty picks the first
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	// PixelsPerUnit is the on-screen size of one world unit.
	PixelsPerUnit float64
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Camera CameraConfig
var DashTrail DashTrailConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		TPS:           60,
		PixelsPerUnit: 16,
	}

	Physics = PhysicsConfig{
		Gravity:          math.Vec2{X: 0, Y: -9.8},
		GravityScale:     1,
		MinGroundNormalY: 0.65,
		MinMoveDistance:  0.001,
		ShellRadius:      0.01,

		FixedStep:   1.0 / 60.0, // one tick per frame at 60 TPS
		MaxSubSteps: 4,
	}

	Player = PlayerConfig{
		MoveSpeed:        8,
		JumpHeight:       5,
		JumpCancelFactor: 0.5,
		DashSpeed:        32,
		DashCooldown:     2,
		DashDuration:     0.25,

		Width:  0.75,
		Height: 1.5,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 60.0, // ~10% of 640px screen width
		LookAheadSmoothing: 0.05,
	}

	DashTrail = DashTrailConfig{
		Duration:   0.3,
		StartAlpha: 0.6,
		Spacing:    2,
	}

	UI = UIConfig{
		HUDFontSize:   12,
		DebugFontSize: 10,
		HUDMargin:     6,

		BackgroundColor: color.RGBA{R: 24, G: 26, B: 38, A: 255},
		SolidColor:      DarkBlue,
		RampColor:       LightBlue,
		TriggerColor:    color.RGBA{R: 200, G: 40, B: 40, A: 90},
		PlayerColor:     BrightGreen,
		DashColor:       Orange,
		NormalColor:     Yellow,
	}

	Debug = DebugConfig{
		ShowColliders: false,
	}
}

// KinematicsConfig builds the body configuration from Physics.
func KinematicsConfig() kinematics.Config {
	return kinematics.Config{
		GravityScale:     Physics.GravityScale,
		MinGroundNormalY: Physics.MinGroundNormalY,
		MinMoveDistance:  Physics.MinMoveDistance,
		ShellRadius:      Physics.ShellRadius,
	}
}

// CharacterConfig builds the character configuration from Player.
func CharacterConfig() controller.Config {
	return controller.Config{
		MoveSpeed:        Player.MoveSpeed,
		JumpHeight:       Player.JumpHeight,
		JumpCancelFactor: Player.JumpCancelFactor,
		DashSpeed:        Player.DashSpeed,
		DashCooldown:     Player.DashCooldown,
		DashDuration:     Player.DashDuration,
	}
}

// PlayerSize returns the player collider size in world units.
func PlayerSize() math.Vec2 {
	return math.Vec2{X: Player.Width, Y: Player.Height}
}
