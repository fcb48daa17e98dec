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

// SpawnFlipBurst creates the fixed-size particle burst for a gravity flip,
// centered on the given origin.
func SpawnFlipBurst(e *ecs.ECS, x, y float64) {
	for i := 0; i < cfg.Particle.BurstCount; i++ {
		velocity := components.Vector{
			X: (rand.Float64()*2 - 1) * cfg.Particle.MaxSpeed,
			Y: (rand.Float64()*2 - 1) * cfg.Particle.MaxSpeed,
		}
		size := cfg.Particle.MinSize + rand.Float64()*(cfg.Particle.MaxSize-cfg.Particle.MinSize)
		decay := cfg.Particle.MinDecay + rand.Float64()*(cfg.Particle.MaxDecay-cfg.Particle.MinDecay)
		factory.CreateParticle(e, components.Vector{X: x, Y: y}, velocity, size, decay)
	}
}

// UpdateParticles integrates particle motion, decays life and discards
// dead particles.
func UpdateParticles(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		particle.Position.X += particle.Velocity.X
		particle.Position.Y += particle.Velocity.Y
		particle.Life -= particle.Decay
		if particle.Life <= 0 {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		entry.Remove()
	}
}
