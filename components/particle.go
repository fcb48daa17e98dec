package components

import "github.com/yohamta/donburi"

type ParticleData struct {
	Position Vector
	Velocity Vector
	Life     float64 // Remaining life in (0, 1]; discarded at <= 0
	Decay    float64 // Life lost per tick
	Size     float64
}

var Particle = donburi.NewComponentType[ParticleData]()
