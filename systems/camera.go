package systems

import (
	"math"

	"github.com/automoto/slopedash/components"
	"github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the first player with horizontal look-ahead, kept
// inside the level bounds. Positions are in screen pixels, y-up.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	data := components.Level.Get(levelEntry).Level.Data

	ppu := config.C.PixelsPerUnit
	body := player.Actor.Body
	target := dmath.Vec2{
		X: (body.Position.X + body.Size.X/2) * ppu,
		Y: (body.Position.Y + body.Size.Y/2) * ppu,
	}
	direction := 1.0
	if !player.Character.FacingRight() {
		direction = -1
	}

	followTarget(camera, target, body.Velocity.X*ppu, direction,
		data.Width*ppu, data.Height*ppu,
		float64(config.C.Width), float64(config.C.Height))
}

// followTarget moves camera towards target. The first call snaps.
func followTarget(camera *components.CameraData, target dmath.Vec2, speedX, direction, levelW, levelH, screenW, screenH float64) {
	// Only update look-ahead when moving - freeze offset when idle
	if math.Abs(speedX) > 0.1 {
		targetLookAhead := direction * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := clampAxis(target.X+camera.LookAheadX, levelW, screenW)
	targetY := clampAxis(target.Y, levelH, screenH)

	if !camera.Snapped {
		camera.Position = dmath.Vec2{X: targetX, Y: targetY}
		camera.Snapped = true
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside [0, level]. A level smaller than the
// screen is centred.
func clampAxis(v, level, screen float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
