package systems

import (
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/systems/factory"
	"github.com/automoto/gravibox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a world the way the run scene does: space, run
// state and player, all headless.
func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width*2, cfg.C.Height, 16, 16)
	factory.CreateRun(e, 0)
	factory.CreatePlayer(e)
	return e
}

func playerEntry(e *ecs.ECS) *donburi.Entry {
	entry, _ := components.Player.First(e.World)
	return entry
}

func particleCount(e *ecs.ECS) int {
	count := 0
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}
