package scenes

import (
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the playable arena. It doubles as the session's renderer:
// after-render hooks run once the world layer is drawn, under the overlay.
type ArenaScene struct {
	ecs   *ecs.ECS
	arena *systems.ArenaData
	hooks []func(launcher.Surface)

	width, height int
}

func NewArenaScene(opts Options) (*ArenaScene, error) {
	opts = opts.withDefaults()
	s := &ArenaScene{width: opts.Width, height: opts.Height}

	e, arena, err := buildArena(opts, s)
	if err != nil {
		return nil, err
	}
	s.ecs = e
	s.arena = arena

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateSpawnFX)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawPlanets)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawDebug)

	systems.GetOrCreateSettings(e)
	arena.Session.Start(float64(opts.Width), float64(opts.Height))
	return s, nil
}

// OnAfterRender registers a hook that draws onto each finished frame.
func (s *ArenaScene) OnAfterRender(fn func(launcher.Surface)) {
	s.hooks = append(s.hooks, fn)
}

func (s *ArenaScene) Update() {
	s.ecs.Update()
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.ecs.DrawLayer(cfg.Default, screen)
	surface := systems.ScreenSurface{Screen: screen}
	for _, fn := range s.hooks {
		fn(surface)
	}
	s.ecs.DrawLayer(cfg.Overlay, screen)
}

// Resize forwards a changed viewport to the session. Unchanged sizes are
// ignored because Layout is called every frame.
func (s *ArenaScene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.arena.Translator.Cancel()
	s.arena.Session.Resize(float64(width), float64(height))
}

// ApplySaved restores persisted toggles.
func (s *ArenaScene) ApplySaved(saved *systems.SavedSettings) {
	systems.ApplySavedSettings(s.ecs, saved)
}
