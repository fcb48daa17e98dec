package systems

import (
	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the global mute and fullscreen toggles. Runs on
// every scene, outside the running-state gate.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ToggleFullscreen(e)
	}
}

// ToggleFullscreen flips the fullscreen state and persists it
func ToggleFullscreen(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Fullscreen = !settings.Fullscreen
	ebiten.SetFullscreen(settings.Fullscreen)
	saveCurrentSettings(settings)
}

// ToggleMute flips the mute state and persists it
func ToggleMute(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Muted = !settings.Muted
	SetMuted(settings.Muted)
	saveCurrentSettings(settings)
}

// ApplySavedSettings applies loaded settings at startup, before any scene
// exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
	globalFullscreen = saved.Fullscreen
}

var globalFullscreen bool

// GetOrCreateSettings returns the singleton Settings component, seeded
// from the globally applied saved settings.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Muted:      IsMuted(),
			Fullscreen: globalFullscreen,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

func saveCurrentSettings(s *components.SettingsData) {
	globalFullscreen = s.Fullscreen
	_ = SaveSettings(&SavedSettings{
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
	})
}
