package components

import (
	"github.com/automoto/slopedash/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level      *world.Level
	Name       string
	LevelIndex int
	Names      []string      // All loaded level names, sorted
	Background *ebiten.Image // Rendered tile layers, nil when unavailable
}

var Level = donburi.NewComponentType[LevelData]()
