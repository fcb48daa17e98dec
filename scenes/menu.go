package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/gravibox/systems"
	"github.com/automoto/gravibox/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu (the idle state)
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	startRun := func() {
		ms.sceneChanger.ChangeScene(NewRunScene(ms.sceneChanger))
	}

	// Minimal systems for the menu: audio, input, the global toggles and
	// the keyboard path to starting a run
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettings)
	ms.ecs.AddSystem(systems.NewUpdateMenu(startRun))

	settings := systems.GetOrCreateSettings(ms.ecs)

	ms.menuUI = ui.NewMenuUI(
		systems.LoadBestScore(),
		settings.Muted,
		settings.Fullscreen,
		startRun,
		func() bool {
			systems.ToggleMute(ms.ecs)
			return systems.GetOrCreateSettings(ms.ecs).Muted
		},
		func() bool {
			systems.ToggleFullscreen(ms.ecs)
			return systems.GetOrCreateSettings(ms.ecs).Fullscreen
		},
		func() {
			os.Exit(0)
		},
	)
}
