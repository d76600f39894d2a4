package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/input"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/physics"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/automoto/planetdrop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type nullRenderer struct{}

func (nullRenderer) OnAfterRender(func(launcher.Surface)) {}

func newTestArena(t *testing.T) (*ecs.ECS, *ArenaData) {
	t.Helper()
	cfg.Reset()

	world, err := physics.NewWorld(cfg.Physics)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	scheduler := launcher.NewTickScheduler()
	session, err := launcher.NewSession(launcher.Options{
		Settings: launcher.Settings{
			Arena:   cfg.Arena,
			Launch:  cfg.Launch,
			Planets: cfg.Planets,
			Preview: cfg.Preview,
		},
		Physics:   world,
		Renderer:  nullRenderer{},
		Scheduler: scheduler,
		ECS:       e,
		Rand:      rand.New(rand.NewPCG(5, 6)),
	})
	require.NoError(t, err)

	entry := CreateArena(e, ArenaData{
		World:      world,
		Scheduler:  scheduler,
		Session:    session,
		Translator: input.NewTranslator(input.Identity),
	})
	session.Start(400, 600)
	return e, Arena.Get(entry)
}

func TestUpdatePhysicsDrivesCooldown(t *testing.T) {
	e, arena := newTestArena(t)
	c := arena.Session.Controller()

	spawn := c.Geometry().SpawnPoint
	arena.Session.PointerDown(spawn)
	arena.Session.PointerMove(gamemath.Vec2{X: spawn.X, Y: spawn.Y - 80})
	arena.Session.PointerUp()
	require.Equal(t, launcher.Cooldown, c.State())

	// 24 ticks of 1/60s fall a few nanoseconds short of 400ms
	for range 24 {
		UpdatePhysics(e)
	}
	assert.Equal(t, launcher.Cooldown, c.State())
	UpdatePhysics(e)
	assert.Equal(t, launcher.Waiting, c.State())
	assert.Equal(t, uint64(25), arena.World.Ticks())
}

func TestUpdateSpawnFXFinishesTween(t *testing.T) {
	e, _ := newTestArena(t)

	var fx *components.SpawnFXData
	tags.Planet.Each(e.World, func(entry *donburi.Entry) {
		fx = components.SpawnFX.Get(entry)
	})
	require.NotNil(t, fx)
	require.NotNil(t, fx.Tween)

	UpdateSpawnFX(e)
	assert.Greater(t, fx.Scale, 0.4)

	for range 20 {
		UpdateSpawnFX(e)
	}
	assert.Nil(t, fx.Tween)
	assert.Equal(t, 1.0, fx.Scale)
}

func TestUpdateSettingsTogglesPreview(t *testing.T) {
	e, arena := newTestArena(t)
	settings := GetOrCreateSettings(e)
	require.True(t, settings.ShowPreview)

	in := getOrCreateInput(e)
	in.Current[cfg.ActionTogglePreview] = true
	UpdateSettings(e)

	assert.False(t, settings.ShowPreview)
	assert.False(t, settings.Dirty, "saved and cleared")
	assert.False(t, arena.Session.Controller().PreviewEnabled())

	// held, not pressed again
	in.Previous = in.Current
	UpdateSettings(e)
	assert.False(t, settings.ShowPreview)
}

func TestGetAction(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionToggleDebug] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(&in, cfg.ActionToggleDebug))

	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(&in, cfg.ActionToggleDebug))
}

func TestApplySavedSettingsWithoutSave(t *testing.T) {
	e, arena := newTestArena(t)
	ApplySavedSettings(e, nil)
	assert.True(t, arena.Session.Controller().PreviewEnabled())

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved, "persistence is not initialised in tests")
}
