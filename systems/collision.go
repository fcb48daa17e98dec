package systems

import (
	"github.com/automoto/gravibox/components"
	"github.com/automoto/gravibox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions tests the player body against every live obstacle.
// The first overlap found ends the run.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	// Broadphase via the resolv cell grid, then an exact rectangle test.
	check := playerObj.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return
	}
	for _, obstacle := range check.ObjectsByTags(tags.ResolvObstacle) {
		if rectsOverlap(playerObj.Object, obstacle) {
			EndRun(e)
			return
		}
	}
}

// rectsOverlap reports strict AABB overlap on both axes. Rectangles that
// merely touch along an edge do not collide.
func rectsOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// ObstacleCount returns the number of live obstacles
func ObstacleCount(e *ecs.ECS) int {
	count := 0
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}
