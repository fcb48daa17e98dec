package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFlip
	ActionMute
	ActionFullscreen
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
	// MouseButtons lets pointer clicks trigger the action as well
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFlip: {
				Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
