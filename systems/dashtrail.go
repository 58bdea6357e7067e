package systems

import (
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDashTrails drops afterimages behind dashing players and fades the
// existing ones out.
func UpdateDashTrails(e *ecs.ECS) {
	sim := getSimulation(e)
	if sim == nil {
		return
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		trail := components.DashTrail.Get(entry)
		stepDashTrail(trail,
			player.Character.DashState() == controller.Dashing,
			player.Actor.Body.Position,
			player.Character.FacingRight(),
			sim.FrameTicks,
			float32(frameDt()),
		)
	})
}

func stepDashTrail(trail *components.DashTrailData, dashing bool, pos gamemath.Vec2, facingRight bool, ticks int, dt float32) {
	kept := trail.Images[:0]
	for _, img := range trail.Images {
		alpha, done := img.Fade.Update(dt)
		if done {
			continue
		}
		img.Alpha = alpha
		kept = append(kept, img)
	}
	trail.Images = kept

	if !dashing {
		trail.SinceLast = 0
		return
	}

	trail.SinceLast += ticks
	if trail.SinceLast < cfg.DashTrail.Spacing {
		return
	}
	trail.SinceLast = 0
	trail.Images = append(trail.Images, components.Afterimage{
		X:           pos.X,
		Y:           pos.Y,
		FacingRight: facingRight,
		Alpha:       cfg.DashTrail.StartAlpha,
		Fade:        gween.New(cfg.DashTrail.StartAlpha, 0, cfg.DashTrail.Duration, ease.OutQuad),
	})
}
