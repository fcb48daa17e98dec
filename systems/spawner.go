package systems

import (
	"math/rand"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/systems/factory"
	"github.com/automoto/gravibox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles spawns new obstacles at the right edge, scrolls the live
// ones leftward and removes those fully past the left edge.
//
// The spawn throttle redraws its random gap threshold every tick until it
// is met, so the effective spacing is probabilistic rather than a fixed
// interval. That bias toward shorter gaps is the shipped game feel.
func UpdateObstacles(e *ecs.ECS) {
	run := GetRun(e)
	if run == nil {
		return
	}

	run.FramesSinceSpawn++
	gap := cfg.Obstacle.MinGap + rand.Float64()*(cfg.Obstacle.MaxGap-cfg.Obstacle.MinGap)
	if float64(run.FramesSinceSpawn) > gap/cfg.Obstacle.BaseSpeed {
		factory.CreateObstacle(e, rand.Intn(2) == 0)
		run.FramesSinceSpawn = 0
	}

	var toRemove []*donburi.Entry

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obstacle := components.Obstacle.Get(entry)
		obj := components.Object.Get(entry)

		// Each obstacle accelerates independently over its lifetime
		obstacle.Speed += cfg.Obstacle.SpeedIncrement
		obj.X -= obstacle.Speed
		obj.Update()

		if obj.X+obj.W < 0 {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		entry.Remove()
	}
}
