package systems

import (
	"image/color"

	"github.com/automoto/slopedash/collision"
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and draws each
// player's ground normal.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	scale := components.Level.Get(levelEntry).Level.Scale
	width, height := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			b := collision.Bounds(obj, scale)
			x, y, w, h := v.rect(b.X, b.Y, b.W, b.H)

			// Cull objects outside viewport
			if x+w < 0 || x > width || y+h < 0 || y > height {
				continue
			}

			if obj.HasTags(tags.ResolvTrigger) {
				vector.FillRect(screen, x, y, w, h, cfg.UI.TriggerColor, false)
			}
			strokeRect(screen, x, y, w, h, debugColor(obj))
		}
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		body := components.Player.Get(entry).Actor.Body
		cx := body.Position.X + body.Size.X/2
		x0, y0 := v.point(cx, body.Position.Y)
		x1, y1 := v.point(cx+body.GroundNormal.X, body.Position.Y+body.GroundNormal.Y)
		c := cfg.UI.NormalColor
		if !body.Grounded {
			c = cfg.Red
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	})
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{R: 100, G: 100, B: 100, A: 255} // Grey
	case obj.HasTags(tags.ResolvRamp):
		return cfg.LightBlue
	case obj.HasTags(tags.ResolvActor):
		return color.RGBA{B: 255, A: 255} // Blue
	case obj.HasTags(tags.ResolvTrigger):
		return cfg.Red
	}
	return color.RGBA{G: 255, B: 255, A: 255} // Cyan default
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
