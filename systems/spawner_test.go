package systems

import (
	"testing"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/systems/factory"
)

func TestSpawnAfterThrottleElapsed(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)

	// Far beyond any possible gap threshold, so the next tick must spawn
	run.FramesSinceSpawn = 100000
	UpdateObstacles(e)

	if got := ObstacleCount(e); got != 1 {
		t.Fatalf("expected exactly one obstacle spawned, got %d", got)
	}
	if run.FramesSinceSpawn != 0 {
		t.Errorf("expected spawn counter reset, got %d", run.FramesSinceSpawn)
	}

	entry, _ := components.Obstacle.First(e.World)
	obstacle := components.Obstacle.Get(entry)
	obj := components.Object.Get(entry)

	if obj.H < cfg.Obstacle.MinHeight || obj.H >= cfg.Obstacle.MaxHeight {
		t.Errorf("obstacle height %f outside [%f, %f)", obj.H, cfg.Obstacle.MinHeight, cfg.Obstacle.MaxHeight)
	}
	if obstacle.OnCeiling {
		if obj.Y != 0 {
			t.Errorf("ceiling obstacle should start at y=0, got %f", obj.Y)
		}
	} else {
		want := float64(cfg.C.Height) - obj.H
		if obj.Y != want {
			t.Errorf("floor obstacle should start at y=%f, got %f", want, obj.Y)
		}
	}
}

func TestNoSpawnBeforeMinimumGap(t *testing.T) {
	e := newTestWorld()

	// The smallest possible threshold is MinGap / BaseSpeed frames
	minFrames := int(cfg.Obstacle.MinGap / cfg.Obstacle.BaseSpeed)
	for tick := 0; tick < minFrames-1; tick++ {
		UpdateObstacles(e)
	}

	if got := ObstacleCount(e); got != 0 {
		t.Errorf("expected no obstacle before the minimum gap elapsed, got %d", got)
	}
}

func TestObstacleRemovedOncePastLeftEdge(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	run.FramesSinceSpawn = -100000 // No spawning during this test

	entry := factory.CreateObstacle(e, false)
	obj := components.Object.Get(entry)

	// Right edge still on screen after one tick of movement: kept
	obj.X = 10
	obj.Update()
	UpdateObstacles(e)
	if got := ObstacleCount(e); got != 1 {
		t.Fatalf("expected obstacle kept while right edge >= 0, got %d live", got)
	}

	// Fully past the left edge after the next move: removed
	obj.X = -obj.W
	obj.Update()
	UpdateObstacles(e)
	if got := ObstacleCount(e); got != 0 {
		t.Errorf("expected obstacle removed once fully off screen, got %d live", got)
	}
}

func TestObstaclesAccelerateIndependently(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	run.FramesSinceSpawn = -100000 // No spawning during this test

	first := factory.CreateObstacle(e, false)
	for tick := 0; tick < 10; tick++ {
		UpdateObstacles(e)
	}
	second := factory.CreateObstacle(e, true)
	for tick := 0; tick < 5; tick++ {
		UpdateObstacles(e)
	}

	firstSpeed := components.Obstacle.Get(first).Speed
	secondSpeed := components.Obstacle.Get(second).Speed

	wantFirst := cfg.Obstacle.BaseSpeed + 15*cfg.Obstacle.SpeedIncrement
	wantSecond := cfg.Obstacle.BaseSpeed + 5*cfg.Obstacle.SpeedIncrement

	if !almostEqual(firstSpeed, wantFirst) {
		t.Errorf("expected first obstacle speed %f, got %f", wantFirst, firstSpeed)
	}
	if !almostEqual(secondSpeed, wantSecond) {
		t.Errorf("expected second obstacle speed %f, got %f", wantSecond, secondSpeed)
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
