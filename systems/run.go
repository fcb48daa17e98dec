package systems

import (
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/yohamta/donburi/ecs"
)

// GetRun returns the RunData singleton for this world, or nil before the
// run entity has been created.
func GetRun(e *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(e.World)
	if !ok {
		return nil
	}
	return components.Run.Get(entry)
}

// IsRunning reports whether the simulation should advance this tick
func IsRunning(e *ecs.ECS) bool {
	run := GetRun(e)
	return run != nil && run.State == cfg.RunStateRunning
}

// IsRunOver reports whether the run has ended in a collision
func IsRunOver(e *ecs.ECS) bool {
	run := GetRun(e)
	return run != nil && run.State == cfg.RunStateOver
}

// WithRunningCheck wraps a gameplay system so that ticking while the run
// is not in the running state is a no-op.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// EndRun freezes the simulation and settles the score against the stored
// best. Persisting only happens when the best was actually beaten.
func EndRun(e *ecs.ECS) {
	run := GetRun(e)
	if run == nil || run.State != cfg.RunStateRunning {
		return
	}
	run.State = cfg.RunStateOver

	final := int(run.Score)
	if final > run.Best {
		run.Best = final
		run.NewBest = true
		_ = SaveBestScore(final)
		PlaySFX(e, cfg.SoundNewBest)
	} else {
		PlaySFX(e, cfg.SoundHit)
	}
}
