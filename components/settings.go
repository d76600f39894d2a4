package components

import "github.com/yohamta/donburi"

// SettingsData stores the player-facing toggles that survive restarts.
type SettingsData struct {
	ShowPreview bool
	Fullscreen  bool
	ShowDebug   bool
	Dirty       bool // needs saving
}

var Settings = donburi.NewComponentType[SettingsData]()
