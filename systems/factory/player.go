package factory

import (
	"github.com/automoto/gravibox/archetypes"
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player body at its reset position: resting on
// the floor with gravity pulling downward.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	startY := float64(cfg.C.Height) - cfg.Player.Size
	obj := resolv.NewObject(cfg.Player.X, startY, cfg.Player.Size, cfg.Player.Size)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		GravityDown:  true,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
		OnGround:     true,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
	}

	return player
}
