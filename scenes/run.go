package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/systems"
	"github.com/automoto/gravibox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gameOverDelayFrames keeps the frozen final frame on screen briefly
// before switching to the game over screen.
const gameOverDelayFrames = 45

// RunScene owns a single run. Creating a fresh scene is the reset: score
// zero, empty obstacle and particle collections, player at its start
// position with downward gravity.
type RunScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	overFrames   int
}

// NewRunScene creates a new run scene
func NewRunScene(sc SceneChanger) *RunScene {
	return &RunScene{sceneChanger: sc}
}

func (rs *RunScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if systems.IsRunOver(rs.ecs) {
		rs.overFrames++
		if rs.overFrames >= gameOverDelayFrames {
			run := systems.GetRun(rs.ecs)
			rs.sceneChanger.ChangeScene(NewGameOverScene(
				rs.sceneChanger, int(run.Score), run.Best, run.NewBest,
			))
		}
	}
}

func (rs *RunScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)

	// Gameplay systems are no-ops unless the run state is running
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateObstacles))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateParticles))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateScore))

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawObstacles)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	rs.ecs = e

	// The space covers the spawn zone past the right edge so new
	// obstacles are tracked from their first tick.
	factory.CreateSpace(rs.ecs, cfg.C.Width*2, cfg.C.Height, 16, 16)
	factory.CreateRun(rs.ecs, systems.LoadBestScore())
	factory.CreatePlayer(rs.ecs)
}
