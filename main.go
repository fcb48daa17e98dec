package main

import (
	"image"
	"log"

	"github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/fonts"
	"github.com/automoto/gravibox/scenes"
	"github.com/automoto/gravibox/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 18)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)

	return g
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
	ebiten.SetWindowTitle("Gravibox")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
