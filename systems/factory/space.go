package factory

import (
	"github.com/automoto/gravibox/archetypes"
	"github.com/automoto/gravibox/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space entity. The space extends past
// the right edge of the viewport so freshly spawned obstacles are tracked
// from their first tick.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}
