package systems

import (
	"math"
	"testing"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
)

func TestPlayerStaysWithinPlanes(t *testing.T) {
	e := newTestWorld()
	entry := playerEntry(e)
	obj := components.Object.Get(entry)

	floorY := float64(cfg.C.Height) - cfg.Player.Size
	for tick := 0; tick < 600; tick++ {
		// Flip every so often, including mid-air
		if tick%37 == 0 {
			FlipGravity(e, entry)
		}
		UpdatePlayer(e)

		if obj.Y < 0 || obj.Y > floorY {
			t.Fatalf("tick %d: player y = %f outside [0, %f]", tick, obj.Y, floorY)
		}
	}
}

func TestDoubleFlipRestoresGravitySign(t *testing.T) {
	e := newTestWorld()
	entry := playerEntry(e)
	physics := components.Physics.Get(entry)

	if !physics.GravityDown {
		t.Fatal("expected initial gravity to pull downward")
	}

	physics.SpeedY = 5
	FlipGravity(e, entry)
	if physics.GravityDown {
		t.Error("expected gravity to pull upward after one flip")
	}
	if physics.SpeedY != 0 {
		t.Errorf("expected velocity zeroed on flip, got %f", physics.SpeedY)
	}

	physics.SpeedY = -3
	FlipGravity(e, entry)
	if !physics.GravityDown {
		t.Error("expected gravity restored to downward after two flips")
	}
	if physics.SpeedY != 0 {
		t.Errorf("expected velocity zeroed on second flip, got %f", physics.SpeedY)
	}
}

func TestPlayerSettlesOnFloorWithoutFlips(t *testing.T) {
	e := newTestWorld()
	entry := playerEntry(e)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	// Start mid-air so there is something to settle from
	obj.Y = 50
	physics.OnGround = false

	for tick := 0; tick < 100; tick++ {
		UpdatePlayer(e)
	}

	floorY := float64(cfg.C.Height) - cfg.Player.Size
	if obj.Y != floorY {
		t.Errorf("expected player resting at %f, got %f", floorY, obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("expected zero velocity on ground, got %f", physics.SpeedY)
	}
	if !physics.OnGround {
		t.Error("expected on-ground flag set")
	}
}

func TestFallSpeedClamped(t *testing.T) {
	e := newTestWorld()
	entry := playerEntry(e)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	// Plenty of fall room, plenty of ticks
	obj.Y = 0
	physics.OnGround = false
	for tick := 0; tick < 50; tick++ {
		UpdatePlayer(e)
		if math.Abs(physics.SpeedY) > physics.MaxFallSpeed {
			t.Fatalf("tick %d: |velocity| = %f exceeds max fall speed %f",
				tick, math.Abs(physics.SpeedY), physics.MaxFallSpeed)
		}
	}
}

func TestFlipSpawnsParticleBurst(t *testing.T) {
	e := newTestWorld()
	entry := playerEntry(e)

	if got := particleCount(e); got != 0 {
		t.Fatalf("expected no particles before flip, got %d", got)
	}

	FlipGravity(e, entry)

	if got := particleCount(e); got != cfg.Particle.BurstCount {
		t.Errorf("expected burst of %d particles, got %d", cfg.Particle.BurstCount, got)
	}
}

func TestFlipRotationSettles(t *testing.T) {
	e := newTestWorld()
	entry := playerEntry(e)
	player := components.Player.Get(entry)

	FlipGravity(e, entry)
	if player.RotationTween == nil {
		t.Fatal("expected rotation tween started by flip")
	}

	// Tween duration is a fraction of a second; a second of ticks settles it
	for tick := 0; tick < 60; tick++ {
		UpdatePlayer(e)
	}

	if player.RotationTween != nil {
		t.Error("expected rotation tween finished")
	}
	if math.Abs(player.Rotation-math.Pi) > 1e-4 {
		t.Errorf("expected rotation settled at pi, got %f", player.Rotation)
	}
}
