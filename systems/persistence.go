package systems

import (
	"encoding/json"

	"github.com/automoto/planetdrop/components"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowPreview bool `json:"showPreview"`
	Fullscreen  bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns nil without an error when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// SaveCurrentSettings persists the toggles held by the Settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		ShowPreview: s.ShowPreview,
		Fullscreen:  s.Fullscreen,
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}

// ApplySavedSettings copies saved toggles into the Settings component and the
// running session.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(e)
	settings.ShowPreview = saved.ShowPreview
	settings.Fullscreen = saved.Fullscreen

	ebiten.SetFullscreen(saved.Fullscreen)
	if arena, ok := getArena(e); ok {
		arena.Session.SetPreview(saved.ShowPreview)
	}
}
