package scenes

import (
	"fmt"
	"io"
	"math/rand/v2"

	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/input"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/physics"
	"github.com/automoto/planetdrop/systems"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a scene. Zero values fall back to the config globals.
type Options struct {
	Width  int
	Height int
	Seed   uint64 // 0 picks a random seed
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = cfg.C.Width
	}
	if o.Height <= 0 {
		o.Height = cfg.C.Height
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

func (o Options) rand() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// buildArena creates the physics world, scheduler and session and stores them
// on the arena singleton. The session is not started.
func buildArena(opts Options, renderer launcher.Renderer) (*ecs.ECS, *systems.ArenaData, error) {
	world, err := physics.NewWorld(cfg.Physics)
	if err != nil {
		return nil, nil, err
	}

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
		Renderer:  renderer,
		Scheduler: scheduler,
		ECS:       e,
		Rand:      opts.rand(),
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	entry := systems.CreateArena(e, systems.ArenaData{
		World:      world,
		Scheduler:  scheduler,
		Session:    session,
		Translator: input.NewTranslator(input.Identity),
	})
	return e, systems.Arena.Get(entry), nil
}
