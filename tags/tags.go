package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvObstacle = "obstacle"
)
