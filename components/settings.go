package components

import "github.com/yohamta/donburi"

// SettingsData stores the toggles persisted across sessions
type SettingsData struct {
	Muted      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
