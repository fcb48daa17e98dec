package factory

import (
	"github.com/automoto/gravibox/archetypes"
	"github.com/automoto/gravibox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateParticle creates a single flip-burst particle with full life
func CreateParticle(ecs *ecs.ECS, position, velocity components.Vector, size, decay float64) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(particle, components.ParticleData{
		Position: position,
		Velocity: velocity,
		Life:     1,
		Decay:    decay,
		Size:     size,
	})
	return particle
}
