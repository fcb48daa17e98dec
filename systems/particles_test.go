package systems

import (
	"testing"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/systems/factory"
	"github.com/automoto/gravibox/tags"
	"github.com/yohamta/donburi"
)

func TestBurstVelocitiesAndSizesWithinRange(t *testing.T) {
	e := newTestWorld()

	SpawnFlipBurst(e, 100, 200)

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		if particle.Position.X != 100 || particle.Position.Y != 200 {
			t.Errorf("expected burst origin (100, 200), got (%f, %f)",
				particle.Position.X, particle.Position.Y)
		}
		if particle.Velocity.X < -cfg.Particle.MaxSpeed || particle.Velocity.X >= cfg.Particle.MaxSpeed ||
			particle.Velocity.Y < -cfg.Particle.MaxSpeed || particle.Velocity.Y >= cfg.Particle.MaxSpeed {
			t.Errorf("velocity (%f, %f) out of range", particle.Velocity.X, particle.Velocity.Y)
		}
		if particle.Size < cfg.Particle.MinSize || particle.Size >= cfg.Particle.MaxSize {
			t.Errorf("size %f out of range", particle.Size)
		}
		if particle.Decay < cfg.Particle.MinDecay || particle.Decay >= cfg.Particle.MaxDecay {
			t.Errorf("decay %f out of range", particle.Decay)
		}
		if particle.Life != 1 {
			t.Errorf("expected full life on spawn, got %f", particle.Life)
		}
	})
}

func TestParticleIntegratesVelocity(t *testing.T) {
	e := newTestWorld()
	entry := factory.CreateParticle(e,
		components.Vector{X: 10, Y: 20},
		components.Vector{X: 1, Y: -2},
		3, 0.01)
	particle := components.Particle.Get(entry)

	UpdateParticles(e)

	if particle.Position.X != 11 || particle.Position.Y != 18 {
		t.Errorf("expected position (11, 18), got (%f, %f)",
			particle.Position.X, particle.Position.Y)
	}
}

func TestParticleDiscardedWhenLifeRunsOut(t *testing.T) {
	e := newTestWorld()
	factory.CreateParticle(e,
		components.Vector{X: 0, Y: 0},
		components.Vector{X: 0, Y: 0},
		3, 0.5)

	UpdateParticles(e)
	if got := particleCount(e); got != 1 {
		t.Fatalf("expected particle alive at half life, got %d", got)
	}

	UpdateParticles(e)
	if got := particleCount(e); got != 0 {
		t.Errorf("expected particle discarded at life <= 0, got %d", got)
	}
}
