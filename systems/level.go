package systems

import (
	"github.com/automoto/slopedash/collision"
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/automoto/slopedash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the pre-rendered tile art, or flat shapes for the level
// geometry when the art is unavailable.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	if levelData.Background != nil {
		data := levelData.Level.Data
		scale := v.ppu / data.TileSize
		x, y := v.point(0, data.Height)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(levelData.Background, op)
		return
	}

	scale := levelData.Level.Scale
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		b := collision.Bounds(components.Object.Get(entry).Object, scale)
		sx, sy, sw, sh := v.rect(b.X, b.Y, b.W, b.H)
		vector.FillRect(screen, sx, sy, sw, sh, cfg.UI.SolidColor, false)
	})
	tags.Ramp.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		drawRamp(screen, v, collision.Bounds(obj.Object, scale), obj.SlopeType)
	})
}

// rampOutline returns a ramp's triangle as its two base corners followed by
// the peak, in world units.
func rampOutline(b kinematics.AABB, slopeType string) [3]gamemath.Vec2 {
	peakX := b.X + b.W
	if slopeType == tags.Slope45UpLeft {
		peakX = b.X
	}
	peakY := gamemath.SlopeSurfaceY(peakX, b.X, b.Y, b.W, b.H, slopeType)
	return [3]gamemath.Vec2{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: peakX, Y: peakY},
	}
}

// drawRamp outlines a ramp's triangle.
func drawRamp(screen *ebiten.Image, v view, b kinematics.AABB, slopeType string) {
	outline := rampOutline(b, slopeType)
	c := cfg.UI.RampColor
	for i, p := range outline {
		q := outline[(i+1)%len(outline)]
		x0, y0 := v.point(p.X, p.Y)
		x1, y1 := v.point(q.X, q.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}
