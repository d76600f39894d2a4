package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout. Sections left out keep their current values.
type File struct {
	Arena   *ArenaConfig   `yaml:"arena"`
	Launch  *LaunchConfig  `yaml:"launch"`
	Planets *PlanetConfig  `yaml:"planets"`
	Physics *PhysicsConfig `yaml:"physics"`
	Preview *PreviewConfig `yaml:"preview"`
	HUD     *HUDConfig     `yaml:"hud"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// Load overlays a YAML config onto the globals.
// Search order: customPath -> ~/.planetdrop/config.yaml -> ./configs/planetdrop.yaml -> defaults.
// Only a broken customPath is an error; the other locations are skipped when unreadable.
// It returns the path that was applied, or "" when the defaults were kept.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "planetdrop.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// Apply decodes YAML onto the current globals. Each section is decoded on top
// of its current value so partial sections only override the keys they name.
func Apply(data []byte) error {
	f := File{
		Arena:   cloneArena(),
		Launch:  cloneLaunch(),
		Planets: clonePlanets(),
		Physics: clonePhysics(),
		Preview: clonePreview(),
		HUD:     cloneHUD(),
		Debug:   cloneDebug(),
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	Arena = *f.Arena
	Launch = *f.Launch
	Planets = *f.Planets
	Physics = *f.Physics
	Preview = *f.Preview
	HUD = *f.HUD
	Debug = *f.Debug

	C.Width = Arena.Width
	C.Height = Arena.Height
	return nil
}

func cloneArena() *ArenaConfig     { a := Arena; return &a }
func cloneLaunch() *LaunchConfig   { l := Launch; return &l }
func clonePhysics() *PhysicsConfig { p := Physics; return &p }
func cloneHUD() *HUDConfig         { h := HUD; return &h }
func cloneDebug() *DebugConfig     { d := Debug; return &d }

func clonePlanets() *PlanetConfig {
	p := Planets
	p.Levels = append([]PlanetLevel(nil), Planets.Levels...)
	p.SpawnWeights = append([]SpawnWeight(nil), Planets.SpawnWeights...)
	return &p
}

func clonePreview() *PreviewConfig {
	p := Preview
	p.Dash = append([]float64(nil), Preview.Dash...)
	return &p
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetdrop", filename)
}

// Validate checks every section of the global configuration.
func Validate() error {
	return errors.Join(
		Arena.Validate(),
		Launch.Validate(),
		Planets.Validate(),
		Physics.Validate(),
		Preview.Validate(),
	)
}

func (a ArenaConfig) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("arena: viewport %dx%d must be positive", a.Width, a.Height)
	}
	if a.WallThickness <= 0 {
		return fmt.Errorf("arena: wallThickness %v must be positive", a.WallThickness)
	}
	if a.SpawnTopFraction < 0 || a.SpawnTopFraction > 1 {
		return fmt.Errorf("arena: spawnTopFraction %v must be within [0,1]", a.SpawnTopFraction)
	}
	return nil
}

func (l LaunchConfig) Validate() error {
	switch l.Mode {
	case LaunchModeSlingshot, LaunchModeDrop:
	default:
		return fmt.Errorf("launch: unknown mode %q", l.Mode)
	}
	if l.MaxStretch <= 0 {
		return fmt.Errorf("launch: maxStretch %v must be positive", l.MaxStretch)
	}
	if l.MaxSpeed < 0 {
		return fmt.Errorf("launch: maxSpeed %v must not be negative", l.MaxSpeed)
	}
	if l.Cooldown < 0 {
		return fmt.Errorf("launch: cooldown %v must not be negative", l.Cooldown)
	}
	return nil
}

// Validate reports a level table that cannot serve every spawn weight.
func (p PlanetConfig) Validate() error {
	if len(p.Levels) == 0 {
		return errors.New("planets: level table is empty")
	}
	seen := make(map[int]bool, len(p.Levels))
	for _, lvl := range p.Levels {
		if lvl.Level < 1 {
			return fmt.Errorf("planets: level %d must be >= 1", lvl.Level)
		}
		if seen[lvl.Level] {
			return fmt.Errorf("planets: level %d defined twice", lvl.Level)
		}
		if lvl.Radius <= 0 {
			return fmt.Errorf("planets: level %d radius %v must be positive", lvl.Level, lvl.Radius)
		}
		seen[lvl.Level] = true
	}

	if len(p.SpawnWeights) == 0 {
		return errors.New("planets: no spawn weights")
	}
	total := 0.0
	for _, w := range p.SpawnWeights {
		if !seen[w.Level] {
			return fmt.Errorf("planets: spawn weight references unknown level %d", w.Level)
		}
		if w.Weight < 0 {
			return fmt.Errorf("planets: level %d weight %v must not be negative", w.Level, w.Weight)
		}
		total += w.Weight
	}
	if total <= 0 {
		return errors.New("planets: spawn weights sum to zero")
	}
	if p.Density <= 0 {
		return fmt.Errorf("planets: density %v must be positive", p.Density)
	}
	return nil
}

func (p PhysicsConfig) Validate() error {
	if p.TicksPerSecond <= 0 {
		return fmt.Errorf("physics: ticksPerSecond %d must be positive", p.TicksPerSecond)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("physics: iterations %d must be positive", p.Iterations)
	}
	return nil
}

func (p PreviewConfig) Validate() error {
	if p.Steps < 1 {
		return fmt.Errorf("preview: steps %d must be at least 1", p.Steps)
	}
	if p.StepScale <= 0 {
		return fmt.Errorf("preview: stepScale %v must be positive", p.StepScale)
	}
	for _, d := range p.Dash {
		if d < 0 {
			return fmt.Errorf("preview: dash %v has a negative length", p.Dash)
		}
	}
	return nil
}
