package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/slopedash/assets"
	"github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/fonts"
	"github.com/automoto/slopedash/scenes"
	"github.com/automoto/slopedash/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levels []assets.Level) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(levels),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "level to play (default: first level)")
	levelDir := flag.String("dir", "", "directory of .tmx levels to load instead of the bundled ones")
	tuningPath := flag.String("tuning", "", "YAML file overriding physics, player and camera tuning")
	debug := flag.Bool("debug", false, "show collision shapes on startup")
	flag.Parse()

	config.Debug.Level = *levelName
	config.Debug.ShowColliders = *debug

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	loader := assets.NewLevelLoader()
	if *levelDir != "" {
		loader = assets.NewLevelLoaderFS(os.DirFS(*levelDir), ".")
	}
	levels, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("slopedash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(levels)); err != nil {
		log.Fatal(err)
	}
}
