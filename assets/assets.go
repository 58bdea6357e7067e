package assets

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/slopedash/assets/levels"
	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Level is a loaded map: its collision data plus the pre-rendered tile art.
type Level struct {
	Name       string
	Data       *leveldata.CollisionData
	Background *ebiten.Image // nil when the tile layers could not be rendered
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the levels bundled with the game.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levels.FS, dir: levels.Dir}
}

// NewLevelLoaderFS reads *.tmx files from dir in fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels loads every level in the loader's directory, sorted by name.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	data, names, err := leveldata.LoadAllLevels(l.fsys, l.dir)
	if err != nil {
		return nil, err
	}

	loaded := make([]Level, 0, len(names))
	for _, name := range names {
		level := Level{Name: name, Data: data[name]}
		bg, err := l.renderBackground(path.Join(l.dir, name+".tmx"))
		if err != nil {
			log.Printf("Warning: Could not render level %s: %v", name, err)
		} else {
			level.Background = bg
		}
		loaded = append(loaded, level)
	}
	return loaded, nil
}

// renderBackground draws every tile layer flagged with the "render"
// property into a single image in map pixels.
func (l *LevelLoader) renderBackground(levelPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %d: %v", i, err)
			continue
		}

		// Skip fully transparent layers
		opacity := layer.Opacity
		if opacity <= 0 {
			renderer.Clear()
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return background, nil
}
