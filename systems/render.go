package systems

import (
	"image/color"

	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps y-up world units onto the screen around the camera.
type view struct {
	camX, camY   float64 // camera centre in screen pixels, y-up
	halfW, halfH float64
	ppu          float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
		ppu:   cfg.C.PixelsPerUnit,
	}, true
}

// point returns the screen position of a world point.
func (v view) point(x, y float64) (float32, float32) {
	return float32(x*v.ppu - v.camX + v.halfW), float32(v.halfH - (y*v.ppu - v.camY))
}

// rect returns the screen top-left corner and size of a world box whose
// minimum corner is (x, y).
func (v view) rect(x, y, w, h float64) (sx, sy, sw, sh float32) {
	sx, sy = v.point(x, y+h)
	return sx, sy, float32(w * v.ppu), float32(h * v.ppu)
}

// DrawPlayers draws each player's sprite, mirrored to its facing.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil {
			return
		}
		body := player.Actor.Body

		sx, sy, sw, sh := v.rect(body.Position.X, body.Position.Y, body.Size.X, body.Size.Y)
		iw, ih := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()

		op := &ebiten.DrawImageOptions{}
		if !sprite.FacingRight {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(iw), 0)
		}
		op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
		op.GeoM.Translate(float64(sx), float64(sy))
		if player.Character.DashState() == controller.Dashing {
			op.ColorScale.ScaleWithColor(cfg.UI.DashColor)
		}
		screen.DrawImage(sprite.Image, op)
	})
}

// DrawDashTrails draws the fading afterimages left by dashes.
func DrawDashTrails(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		size := components.Player.Get(entry).Actor.Body.Size
		trail := components.DashTrail.Get(entry)
		for _, img := range trail.Images {
			c := cfg.UI.DashColor
			fade := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * clampAlpha(img.Alpha))}
			sx, sy, sw, sh := v.rect(img.X, img.Y, size.X, size.Y)
			vector.FillRect(screen, sx, sy, sw, sh, fade, false)
		}
	})
}

func clampAlpha(a float32) float32 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
