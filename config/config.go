package config

import (
	"image/color"
	"time"
)

// ArenaConfig describes how the arena is derived from the viewport.
type ArenaConfig struct {
	Width  int `yaml:"width"`  // initial viewport width
	Height int `yaml:"height"` // initial viewport height

	WallThickness    float64 `yaml:"wallThickness"`
	WallRestitution  float64 `yaml:"wallRestitution"`
	SpawnTopFraction float64 `yaml:"spawnTopFraction"` // spawn y as a fraction of height
	SpawnMinMargin   float64 `yaml:"spawnMinMargin"`   // spawn y never goes above this

	Background HexColor `yaml:"background"`
	WallColor  HexColor `yaml:"wallColor"`
}

// LaunchMode selects how a waiting planet is released.
type LaunchMode string

const (
	LaunchModeSlingshot LaunchMode = "slingshot"
	LaunchModeDrop      LaunchMode = "drop"
)

// LaunchConfig holds the aim-and-launch tunables.
type LaunchConfig struct {
	Mode       LaunchMode    `yaml:"mode"`
	MaxStretch float64       `yaml:"maxStretch"` // pixels
	MaxSpeed   float64       `yaml:"maxSpeed"`   // pixels per tick at full stretch
	Cooldown   time.Duration `yaml:"cooldown"`

	// GrabAnywhere lets a pointer-down anywhere in the arena start aiming.
	// When false the pointer must land within radius+GrabSlack of the waiting planet.
	GrabAnywhere bool    `yaml:"grabAnywhere"`
	GrabSlack    float64 `yaml:"grabSlack"`
}

// PlanetLevel is one row of the level table.
type PlanetLevel struct {
	Level  int      `yaml:"level"`
	Radius float64  `yaml:"radius"`
	Color  HexColor `yaml:"color"`
}

// SpawnWeight is the relative chance of a level being spawned.
type SpawnWeight struct {
	Level  int     `yaml:"level"`
	Weight float64 `yaml:"weight"`
}

type PlanetConfig struct {
	Levels       []PlanetLevel `yaml:"levels"`
	SpawnWeights []SpawnWeight `yaml:"spawnWeights"`
	Restitution  float64       `yaml:"restitution"`
	Friction     float64       `yaml:"friction"`
	Density      float64       `yaml:"density"`
}

// PhysicsConfig values are per tick, matching the rest of the tunables.
type PhysicsConfig struct {
	TicksPerSecond int     `yaml:"ticksPerSecond"`
	Gravity        float64 `yaml:"gravity"` // pixels per tick^2
	Iterations     int     `yaml:"iterations"`
	Damping        float64 `yaml:"damping"`
}

// PreviewConfig controls the predicted-path overlay.
type PreviewConfig struct {
	Enabled   bool      `yaml:"enabled"`
	Steps     int       `yaml:"steps"`
	StepScale float64   `yaml:"stepScale"` // ticks advanced per preview step
	Dash      []float64 `yaml:"dash"`
	Width     float64   `yaml:"width"`
	Color     HexColor  `yaml:"color"`
}

type HUDConfig struct {
	TextColor HexColor `yaml:"textColor"`
	MarginX   int      `yaml:"marginX"`
	MarginY   int      `yaml:"marginY"`
}

type DebugConfig struct {
	ShowGrabZone bool `yaml:"showGrabZone"`
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Arena ArenaConfig
var Launch LaunchConfig
var Planets PlanetConfig
var Physics PhysicsConfig
var Preview PreviewConfig
var HUD HUDConfig
var Debug DebugConfig

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SlateBlue = color.RGBA{R: 11, G: 16, B: 38, A: 255} // arena background
	Slate     = color.RGBA{R: 30, G: 41, B: 59, A: 255} // walls
	Grey      = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	Sky       = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	Green     = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Amber     = color.RGBA{R: 245, G: 158, B: 11, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	C = &Config{
		Width:  400,
		Height: 600,
	}

	Arena = ArenaConfig{
		Width:            400,
		Height:           600,
		WallThickness:    20,
		WallRestitution:  1.0, // chipmunk multiplies elasticities, so walls defer to the planet
		SpawnTopFraction: 0.1,
		SpawnMinMargin:   60,
		Background:       HexColor(SlateBlue),
		WallColor:        HexColor(Slate),
	}

	Launch = LaunchConfig{
		Mode:         LaunchModeSlingshot,
		MaxStretch:   160,
		MaxSpeed:     10,
		Cooldown:     400 * time.Millisecond,
		GrabAnywhere: true,
		GrabSlack:    24,
	}

	Planets = PlanetConfig{
		Levels: []PlanetLevel{
			{Level: 1, Radius: 14, Color: HexColor(Grey)},
			{Level: 2, Radius: 18, Color: HexColor(Sky)},
			{Level: 3, Radius: 22, Color: HexColor(Green)},
			{Level: 4, Radius: 28, Color: HexColor(Amber)},
		},
		SpawnWeights: []SpawnWeight{
			{Level: 1, Weight: 80},
			{Level: 2, Weight: 20},
		},
		Restitution: 0.3,
		Friction:    0.1,
		Density:     0.001,
	}

	Physics = PhysicsConfig{
		TicksPerSecond: 60,
		Gravity:        0.28, // ~1000 px/s^2 at 60 ticks
		Iterations:     10,
		Damping:        1.0,
	}

	Preview = PreviewConfig{
		Enabled:   true,
		Steps:     28,
		StepScale: 3,
		Dash:      []float64{6, 6},
		Width:     2,
		Color:     HexColor(White),
	}

	HUD = HUDConfig{
		TextColor: HexColor(White),
		MarginX:   16,
		MarginY:   24,
	}

	Debug = DebugConfig{}
}
