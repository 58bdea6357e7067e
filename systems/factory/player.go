package factory

import (
	"fmt"

	"github.com/automoto/slopedash/archetypes"
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a character on the level's spawn point with the
// given index, driven by input.
func CreatePlayer(ecs *ecs.ECS, spawnIndex int, input controller.Input) (*donburi.Entry, error) {
	simEntry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player: no simulation")
	}
	sim := components.Simulation.Get(simEntry).Simulation

	spawn, ok := sim.Level.Spawn(spawnIndex)
	if !ok {
		return nil, fmt.Errorf("create player: no player spawn points defined in map")
	}

	player := archetypes.Player.Spawn(ecs)

	actor := sim.Level.SpawnActor(spawn, cfg.PlayerSize(), cfg.KinematicsConfig())
	character := controller.New(cfg.CharacterConfig(), input, cfg.Physics.Gravity)
	character.OnFlip = func(facingRight bool) {
		components.Sprite.Get(player).FacingRight = facingRight
	}

	components.Player.SetValue(player, components.PlayerData{
		Player: sim.AddPlayer(actor, character),
		Index:  spawn.Index,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Image:       playerImage(),
		Color:       cfg.UI.PlayerColor,
		FacingRight: character.FacingRight(),
	})
	components.DashTrail.SetValue(player, components.DashTrailData{})

	return player, nil
}

// playerImage draws the player's placeholder sprite facing right: a body
// with an eye towards the front.
func playerImage() *ebiten.Image {
	w := int(cfg.Player.Width * cfg.C.PixelsPerUnit)
	h := int(cfg.Player.Height * cfg.C.PixelsPerUnit)
	if w < 4 {
		w = 4
	}
	if h < 4 {
		h = 4
	}

	img := ebiten.NewImage(w, h)
	img.Fill(cfg.UI.PlayerColor)
	fw, fh := float32(w), float32(h)
	vector.FillRect(img, fw*0.55, fh*0.15, fw*0.3, fh*0.15, cfg.White, false)
	return img
}
