package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image       *ebiten.Image
	Color       color.RGBA
	FacingRight bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
