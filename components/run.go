package components

import (
	cfg "github.com/automoto/gravibox/config"
	"github.com/yohamta/donburi"
)

// RunData is the session state for a single run, owned by the run scene.
type RunData struct {
	State            cfg.RunStateID
	Score            float64 // Accumulates per tick; display shows the floor
	Frames           int     // Ticks elapsed while running
	FramesSinceSpawn int     // Spawn throttle counter
	Best             int     // Best score ever, loaded at startup
	NewBest          bool    // Set when this run beat the stored best
}

var Run = donburi.NewComponentType[RunData]()
