package systems

import (
	"math"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = 1.0 / 60.0

// UpdatePlayer handles the flip action and integrates the player body
// against the floor and ceiling planes.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if GetAction(input, cfg.ActionFlip).JustPressed {
			FlipGravity(e, entry)
		}

		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		// Gravity, then clamp fall speed
		physics.SpeedY += physics.Gravity * physics.GravitySign()
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		} else if physics.SpeedY < -physics.MaxFallSpeed {
			physics.SpeedY = -physics.MaxFallSpeed
		}

		obj.Y += physics.SpeedY

		// Resolve against the two planes
		physics.OnGround = false
		floorY := float64(cfg.C.Height) - obj.H
		if obj.Y >= floorY {
			obj.Y = floorY
			physics.SpeedY = 0
			physics.OnGround = true
		}
		if obj.Y <= 0 {
			obj.Y = 0
			physics.SpeedY = 0
			physics.OnGround = true
		}
		obj.Update()

		updateRotation(entry)
	})
}

// FlipGravity inverts the gravity sign and zeroes vertical velocity.
// There is no cooldown; a flip works mid-air. Side effects: a particle
// burst at the body's center and the rotation tween toward the new
// orientation.
func FlipGravity(e *ecs.ECS, entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	physics.GravityDown = !physics.GravityDown
	physics.SpeedY = 0
	physics.OnGround = false
	player.FlipCount++

	target := 0.0
	if !physics.GravityDown {
		target = math.Pi
	}
	player.RotationTween = gween.New(
		float32(player.Rotation),
		float32(target),
		float32(cfg.Player.FlipTweenDuration),
		ease.OutQuad,
	)

	SpawnFlipBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2)
	PlaySFX(e, cfg.SoundFlip)
}

// updateRotation advances the flip tween toward the resting orientation
func updateRotation(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.RotationTween == nil {
		return
	}
	value, finished := player.RotationTween.Update(tickSeconds)
	player.Rotation = float64(value)
	if finished {
		player.RotationTween = nil
	}
}
