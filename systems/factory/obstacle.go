package factory

import (
	"math/rand"

	"github.com/automoto/gravibox/archetypes"
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle creates an obstacle at the right edge of the viewport,
// attached to the ceiling or the floor, with a height drawn uniformly
// from the configured range.
func CreateObstacle(ecs *ecs.ECS, onCeiling bool) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	height := cfg.Obstacle.MinHeight + rand.Float64()*(cfg.Obstacle.MaxHeight-cfg.Obstacle.MinHeight)
	y := float64(cfg.C.Height) - height
	if onCeiling {
		y = 0
	}

	obj := resolv.NewObject(float64(cfg.C.Width), y, cfg.Obstacle.Width, height)
	obj.AddTags(tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Speed:     cfg.Obstacle.BaseSpeed,
		OnCeiling: onCeiling,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
	}

	return obstacle
}
