package systems

import (
	"github.com/automoto/planetdrop/archetypes"
	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts from the configured defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			ShowPreview: cfg.Preview.Enabled,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings applies the toggle keys and saves when something changed.
func UpdateSettings(e *ecs.ECS) {
	in := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(in, cfg.ActionTogglePreview).JustPressed {
		settings.ShowPreview = !settings.ShowPreview
		if arena, ok := getArena(e); ok {
			arena.Session.SetPreview(settings.ShowPreview)
		}
		settings.Dirty = true
	}
	if GetAction(in, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}
	if GetAction(in, cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}
