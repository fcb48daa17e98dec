package systems

import (
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the InputData singleton.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	advanceInputFrame(input, pollActions())
}

// pollActions reads the raw device state into a pressed-state frame
func pollActions() [cfg.ActionCount]bool {
	var frame [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				frame[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				frame[actionID] = true
			}
		}
	}
	return frame
}

// advanceInputFrame rotates the frame buffers. The first poll into a world
// seeds Previous from the polled state, so an input still held from the
// scene that triggered the transition does not read as just-pressed.
func advanceInputFrame(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}
}

// GetAction computes the temporal state of an action from the frame buffers
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	pressed := input.Current[action]
	wasPressed := input.Previous[action]
	return components.ActionState{
		Pressed:      pressed,
		JustPressed:  pressed && !wasPressed,
		JustReleased: !pressed && wasPressed,
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
