package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessLaunchCycle(t *testing.T) {
	cfg.Reset()
	h, err := NewHeadless(Options{Seed: 1})
	require.NoError(t, err)
	require.Equal(t, launcher.Waiting, h.Session().Controller().State())

	for range 3 {
		require.NoError(t, h.Launch(gamemath.Vec2{X: 0, Y: 80}))
	}
	for range 600 {
		h.Tick()
	}

	sum := h.Summary()
	assert.Equal(t, 3, sum.Launches)
	assert.Equal(t, 4, sum.Planets)
	assert.Equal(t, 7, sum.Bodies, "three walls and four planets")
	assert.Equal(t, launcher.Waiting, sum.State)

	free := 0
	h.EachPlanet(func(p *components.PlanetData, pos gamemath.Vec2) {
		if p.Mobility != components.Free {
			return
		}
		free++
		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.LessOrEqual(t, pos.X, 400.0)
		assert.LessOrEqual(t, pos.Y, 600.0)
	})
	assert.Equal(t, 3, free)
}

func TestHeadlessRendersPreviewWhileAiming(t *testing.T) {
	cfg.Reset()
	h, err := NewHeadless(Options{Seed: 2})
	require.NoError(t, err)

	surface := &countingSurface{}
	h.Render(surface)
	assert.Zero(t, surface.strokes)

	spawn := h.Session().Controller().Geometry().SpawnPoint
	h.Session().PointerDown(spawn)
	h.Session().PointerMove(gamemath.Vec2{X: spawn.X + 40, Y: spawn.Y - 60})
	h.Render(surface)
	assert.Equal(t, 1, surface.strokes)
	assert.Equal(t, cfg.Preview.Steps, surface.points)
}

func TestRandomDragPullsUpward(t *testing.T) {
	cfg.Reset()
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		d := RandomDrag(rng)
		assert.GreaterOrEqual(t, d.Y, 0.0)
		assert.LessOrEqual(t, d.Length(), cfg.Launch.MaxStretch*1.2+1e-9)
	}
}

type countingSurface struct {
	strokes int
	points  int
}

func (s *countingSurface) StrokePolyline(st launcher.Stroke) {
	s.strokes++
	s.points += len(st.Points)
}
