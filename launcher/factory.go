package launcher

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/automoto/planetdrop/components"
	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/shared/gamemath"
)

// Projectile describes a planet from the core's point of view.
type Projectile struct {
	ID       components.BodyID
	Level    int
	Radius   float64
	Color    color.RGBA
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Mobility components.Mobility
}

// Factory produces waiting projectiles from the level table.
type Factory struct {
	levels  map[int]config.PlanetLevel
	weights []config.SpawnWeight
	total   float64
	rng     *rand.Rand
}

// NewFactory validates the planet config up front; a spawn weight naming an
// unknown level is a configuration error.
func NewFactory(planets config.PlanetConfig, rng *rand.Rand) (*Factory, error) {
	if err := planets.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planet config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("factory needs a random source")
	}

	f := &Factory{
		levels:  make(map[int]config.PlanetLevel, len(planets.Levels)),
		weights: append([]config.SpawnWeight(nil), planets.SpawnWeights...),
		rng:     rng,
	}
	for _, lvl := range planets.Levels {
		f.levels[lvl.Level] = lvl
	}
	for _, w := range f.weights {
		f.total += w.Weight
	}
	return f, nil
}

// CreateWaiting draws a fresh level and returns a locked projectile at spawn.
func (f *Factory) CreateWaiting(spawn gamemath.Vec2) Projectile {
	level := f.drawLevel()
	spec, ok := f.levels[level]
	if !ok {
		panic(fmt.Sprintf("planet level %d missing from level table", level))
	}
	return Projectile{
		Level:    spec.Level,
		Radius:   spec.Radius,
		Color:    spec.Color.Color(),
		Position: spawn,
		Mobility: components.Locked,
	}
}

// drawLevel samples the weight table; it is re-sampled on every call.
func (f *Factory) drawLevel() int {
	roll := f.rng.Float64() * f.total
	for _, w := range f.weights {
		if roll < w.Weight {
			return w.Level
		}
		roll -= w.Weight
	}
	// Float rounding can leave roll a hair above the last bucket.
	for i := len(f.weights) - 1; i >= 0; i-- {
		if f.weights[i].Weight > 0 {
			return f.weights[i].Level
		}
	}
	return f.weights[len(f.weights)-1].Level
}
