package factory

import (
	"github.com/automoto/gravibox/archetypes"
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun creates the run state entity. A fresh run always starts at
// score zero with the spawn throttle reset.
func CreateRun(ecs *ecs.ECS, best int) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, components.RunData{
		State: cfg.RunStateRunning,
		Best:  best,
	})
	return run
}
