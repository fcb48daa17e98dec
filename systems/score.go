package systems

import (
	cfg "github.com/automoto/gravibox/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore advances the run's score and frame counter. Gated by
// WithRunningCheck, so neither moves while idle or over.
func UpdateScore(e *ecs.ECS) {
	run := GetRun(e)
	if run == nil {
		return
	}
	run.Score += cfg.Score.PerTick
	run.Frames++
}
