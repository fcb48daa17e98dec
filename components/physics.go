package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedY       float64
	Gravity      float64 // Magnitude, always positive
	GravityDown  bool    // Sign: true pulls toward the floor, false toward the ceiling
	MaxFallSpeed float64
	OnGround     bool // Touching the plane gravity currently pulls toward
}

// GravitySign returns +1 when gravity pulls down, -1 when it pulls up.
func (p *PhysicsData) GravitySign() float64 {
	if p.GravityDown {
		return 1
	}
	return -1
}

var Physics = donburi.NewComponentType[PhysicsData]()
