package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Rotation      float64      // Current render rotation in radians
	RotationTween *gween.Tween // Active flip tween, nil when settled
	FlipCount     int          // Flips performed this run
}

var Player = donburi.NewComponentType[PlayerData]()
