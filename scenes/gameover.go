package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	score   int
	best    int
	newBest bool
}

// NewGameOverScene creates a new game over scene showing the finished
// run's score
func NewGameOverScene(sc SceneChanger, score, best int, newBest bool) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		score:        score,
		best:         best,
		newBest:      newBest,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createRunScene := func() interface{} {
		return NewRunScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateSettings)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createRunScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	entry := gs.ecs.World.Entry(gs.ecs.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{
		SelectedOption: components.GameOverRetry,
		FinalScore:     gs.score,
		Best:           gs.best,
		NewBest:        gs.newBest,
		Fade:           gween.New(255, 0, float32(cfg.GameOver.FadeDuration), ease.Linear),
		FadeAlpha:      255,
	})
}
