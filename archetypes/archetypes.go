package archetypes

import (
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Run = newArchetype(
		components.Run,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
