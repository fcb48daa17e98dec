package components

import "github.com/yohamta/donburi"

type ObstacleData struct {
	Speed     float64 // Individual horizontal speed, increases every tick
	OnCeiling bool    // Attachment side: true extends from the ceiling
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
