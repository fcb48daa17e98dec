package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/gravibox/config"
)

func TestScoreIncrementsWhileRunning(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	gated := WithRunningCheck(UpdateScore)

	for tick := 0; tick < 10; tick++ {
		gated(e)
	}

	want := 10 * cfg.Score.PerTick
	if math.Abs(run.Score-want) > 1e-9 {
		t.Errorf("expected score %f after 10 ticks, got %f", want, run.Score)
	}
	if run.Frames != 10 {
		t.Errorf("expected 10 frames counted, got %d", run.Frames)
	}
}

func TestScoreFrozenOutsideRunningState(t *testing.T) {
	e := newTestWorld()
	run := GetRun(e)
	gated := WithRunningCheck(UpdateScore)

	for _, state := range []cfg.RunStateID{cfg.RunStateIdle, cfg.RunStateOver} {
		run.State = state
		run.Score = 5
		run.Frames = 50

		gated(e)

		if run.Score != 5 || run.Frames != 50 {
			t.Errorf("state %v: expected score frozen, got score=%f frames=%d",
				state, run.Score, run.Frames)
		}
	}
}
