package launcher

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options wires a Session to its host.
type Options struct {
	Settings  Settings
	Physics   Physics
	Renderer  Renderer
	Scheduler Scheduler
	ECS       *ecs.ECS    // side table storage; a fresh world is used when nil
	Rand      *rand.Rand  // level draws; seeded from the runtime when nil
	Logger    *log.Logger // discards when nil
}

// Session is one play session: the controller plus the collaborators it was
// built with. Hooks are registered once, at construction.
type Session struct {
	controller *Controller
	registry   *Registry
	started    bool
}

func NewSession(opts Options) (*Session, error) {
	if opts.Physics == nil {
		return nil, errors.New("session needs a physics engine")
	}
	if opts.Renderer == nil {
		return nil, errors.New("session needs a renderer")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("session needs a scheduler")
	}
	if err := opts.Settings.Launch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid launch config: %w", err)
	}
	if err := opts.Settings.Preview.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preview config: %w", err)
	}

	if opts.ECS == nil {
		opts.ECS = ecs.NewECS(donburi.NewWorld())
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	factory, err := NewFactory(opts.Settings.Planets, opts.Rand)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry(opts.ECS)
	c := newController(opts.Settings, opts.Physics, opts.Scheduler, factory, registry, opts.Logger)
	opts.Physics.OnBeforeStep(func() {
		c.Dispatch(PreStep{})
	})
	opts.Renderer.OnAfterRender(func(s Surface) {
		c.Dispatch(PostRender{Surface: s})
	})

	return &Session{controller: c, registry: registry}, nil
}

// Start builds the arena for the initial viewport and spawns the first
// planet. Starting again behaves like a resize.
func (s *Session) Start(width, height float64) {
	if s.started {
		s.Resize(width, height)
		return
	}
	s.started = true
	s.controller.start(width, height)
}

func (s *Session) PointerDown(pos gamemath.Vec2) { s.controller.Dispatch(PointerDown{Pos: pos}) }
func (s *Session) PointerMove(pos gamemath.Vec2) { s.controller.Dispatch(PointerMove{Pos: pos}) }
func (s *Session) PointerUp()                    { s.controller.Dispatch(PointerUp{}) }

// Resize rebuilds the arena for a new viewport. Before Start it starts the
// session instead; an empty viewport is ignored either way.
func (s *Session) Resize(width, height float64) {
	if !s.started {
		if width > 0 && height > 0 {
			s.Start(width, height)
		}
		return
	}
	s.controller.Dispatch(Resize{Width: width, Height: height})
}

// SetPreview shows or hides the predicted path.
func (s *Session) SetPreview(enabled bool) {
	s.controller.preview = enabled
}

func (s *Session) Controller() *Controller { return s.controller }

func (s *Session) Registry() *Registry { return s.registry }
