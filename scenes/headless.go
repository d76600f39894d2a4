package scenes

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/automoto/planetdrop/systems"
	"github.com/yohamta/donburi/ecs"
)

// maxWaitTicks bounds how long a scripted launch waits for a planet.
const maxWaitTicks = 10 * 60

// Headless runs the arena without a window. Its renderer never draws; the
// after-render hooks can still be driven through Render.
type Headless struct {
	ecs   *ecs.ECS
	arena *systems.ArenaData
	hooks []func(launcher.Surface)
}

func NewHeadless(opts Options) (*Headless, error) {
	opts = opts.withDefaults()
	h := &Headless{}

	e, arena, err := buildArena(opts, h)
	if err != nil {
		return nil, err
	}
	h.ecs = e
	h.arena = arena

	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateSpawnFX)

	arena.Session.Start(float64(opts.Width), float64(opts.Height))
	return h, nil
}

func (h *Headless) OnAfterRender(fn func(launcher.Surface)) {
	h.hooks = append(h.hooks, fn)
}

// Render runs the after-render hooks against surface.
func (h *Headless) Render(surface launcher.Surface) {
	for _, fn := range h.hooks {
		fn(surface)
	}
}

// Tick advances the simulation by one physics step.
func (h *Headless) Tick() {
	h.ecs.Update()
}

func (h *Headless) Session() *launcher.Session { return h.arena.Session }

// EachPlanet visits every tracked planet with its current position.
func (h *Headless) EachPlanet(fn func(p *components.PlanetData, pos gamemath.Vec2)) {
	h.arena.Session.Registry().Each(func(p *components.PlanetData) {
		if pos, ok := h.arena.World.Position(p.Body); ok {
			fn(p, pos)
		}
	})
}

// Launch aims from the spawn point by drag and releases. It first ticks until
// a planet is waiting.
func (h *Headless) Launch(drag gamemath.Vec2) error {
	c := h.arena.Session.Controller()
	for i := 0; c.State() != launcher.Waiting; i++ {
		if i >= maxWaitTicks {
			return errors.New("no planet became ready to launch")
		}
		h.Tick()
	}

	spawn := c.Geometry().SpawnPoint
	h.arena.Session.PointerDown(spawn)
	h.arena.Session.PointerMove(spawn.Sub(drag))
	h.Tick()
	h.arena.Session.PointerUp()
	return nil
}

// RandomDrag picks a pull-back for a scripted launch. The pointer is pulled
// mostly upward, so planets are thrown down into the arena.
func RandomDrag(rng *rand.Rand) gamemath.Vec2 {
	angle := math.Pi/2 + (rng.Float64()-0.5)*math.Pi*0.8
	length := rng.Float64() * cfg.Launch.MaxStretch * 1.2
	return gamemath.Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Summary is a snapshot of a headless run.
type Summary struct {
	Launches int
	Ticks    uint64
	Bodies   int
	Planets  int
	State    launcher.State
}

func (h *Headless) Summary() Summary {
	c := h.arena.Session.Controller()
	return Summary{
		Launches: c.Launches(),
		Ticks:    h.arena.World.Ticks(),
		Bodies:   h.arena.World.BodyCount(),
		Planets:  h.arena.Session.Registry().Len(),
		State:    c.State(),
	}
}
