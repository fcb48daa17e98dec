package systems

import (
	"testing"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
)

func TestEndRunBeatsStoredBest(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	run.Best = 30
	run.Score = 50.7

	EndRun(e)

	if run.State != cfg.RunStateOver {
		t.Errorf("expected run over, state = %v", run.State)
	}
	if run.Best != 50 {
		t.Errorf("expected best updated to 50, got %d", run.Best)
	}
	if !run.NewBest {
		t.Error("expected new-best flag set")
	}
}

func TestEndRunKeepsHigherStoredBest(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	run.Best = 30
	run.Score = 10.2

	EndRun(e)

	if run.Best != 30 {
		t.Errorf("expected best unchanged at 30, got %d", run.Best)
	}
	if run.NewBest {
		t.Error("expected new-best flag unset when best not exceeded")
	}
}

func TestEndRunIsIdempotent(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	run.Score = 50

	EndRun(e)
	run.Score = 80
	EndRun(e)

	if run.Best != 50 {
		t.Errorf("expected second EndRun ignored, best = %d", run.Best)
	}
}

func TestTickingWhileNotRunningIsNoOp(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	entry := playerEntry(e)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	run.State = cfg.RunStateOver
	obj.Y = 100
	physics.SpeedY = 5

	WithRunningCheck(UpdatePlayer)(e)
	WithRunningCheck(UpdateObstacles)(e)
	WithRunningCheck(UpdateParticles)(e)

	if obj.Y != 100 || physics.SpeedY != 5 {
		t.Errorf("expected frozen simulation, got y=%f speed=%f", obj.Y, physics.SpeedY)
	}
}

// A restart builds a fresh world; it must look exactly like the start of
// the first run.
func TestFreshWorldIsFullyReset(t *testing.T) {
	// Play a first run to completion
	old := newTestWorld()
	FlipGravity(old, playerEntry(old))
	GetRun(old).Score = 42
	EndRun(old)

	// Restart
	e := newTestWorld()
	run := GetRun(e)
	entry := playerEntry(e)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	if run.State != cfg.RunStateRunning {
		t.Errorf("expected fresh run running, state = %v", run.State)
	}
	if run.Score != 0 || run.Frames != 0 {
		t.Errorf("expected zeroed score, got score=%f frames=%d", run.Score, run.Frames)
	}
	if got := ObstacleCount(e); got != 0 {
		t.Errorf("expected no obstacles after reset, got %d", got)
	}
	if got := particleCount(e); got != 0 {
		t.Errorf("expected no particles after reset, got %d", got)
	}
	if !physics.GravityDown {
		t.Error("expected gravity pulling downward after reset")
	}
	if obj.X != cfg.Player.X {
		t.Errorf("expected player at x=%f, got %f", cfg.Player.X, obj.X)
	}
	wantY := float64(cfg.C.Height) - cfg.Player.Size
	if obj.Y != wantY {
		t.Errorf("expected player at y=%f, got %f", wantY, obj.Y)
	}
}
