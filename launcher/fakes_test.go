package launcher

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/automoto/planetdrop/components"
	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

type fakeBody struct {
	circle   bool
	circleAt CircleSpec
	rect     RectSpec
	static   bool
	pos      gamemath.Vec2
	vel      gamemath.Vec2
}

type fakePhysics struct {
	next    components.BodyID
	bodies  map[components.BodyID]*fakeBody
	removed []components.BodyID
	hooks   []func()
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{bodies: make(map[components.BodyID]*fakeBody)}
}

func (f *fakePhysics) CreateCircle(spec CircleSpec) components.BodyID {
	f.next++
	f.bodies[f.next] = &fakeBody{circle: true, circleAt: spec, static: spec.Static, pos: spec.Position}
	return f.next
}

func (f *fakePhysics) CreateRectangle(spec RectSpec) components.BodyID {
	f.next++
	f.bodies[f.next] = &fakeBody{rect: spec, static: spec.Static, pos: spec.Center}
	return f.next
}

func (f *fakePhysics) RemoveBody(id components.BodyID) {
	delete(f.bodies, id)
	f.removed = append(f.removed, id)
}

func (f *fakePhysics) MakeBodyStatic(id components.BodyID, static bool)  { f.bodies[id].static = static }
func (f *fakePhysics) SetVelocity(id components.BodyID, v gamemath.Vec2) { f.bodies[id].vel = v }
func (f *fakePhysics) SetPosition(id components.BodyID, p gamemath.Vec2) { f.bodies[id].pos = p }
func (f *fakePhysics) OnBeforeStep(fn func())                            { f.hooks = append(f.hooks, fn) }

func (f *fakePhysics) step() {
	for _, fn := range f.hooks {
		fn()
	}
}

func (f *fakePhysics) circles() int {
	n := 0
	for _, b := range f.bodies {
		if b.circle {
			n++
		}
	}
	return n
}

type fakeRenderer struct {
	hooks []func(Surface)
}

func (r *fakeRenderer) OnAfterRender(fn func(Surface)) { r.hooks = append(r.hooks, fn) }

func (r *fakeRenderer) render(s Surface) {
	for _, fn := range r.hooks {
		fn(s)
	}
}

type fakeSurface struct {
	strokes []Stroke
}

func (s *fakeSurface) StrokePolyline(st Stroke) { s.strokes = append(s.strokes, st) }

type transitionLog struct {
	from, to State
}

type harness struct {
	session     *Session
	physics     *fakePhysics
	renderer    *fakeRenderer
	scheduler   *TickScheduler
	transitions []transitionLog
}

func defaultSettings() Settings {
	config.Reset()
	return Settings{
		Arena:   config.Arena,
		Launch:  config.Launch,
		Planets: config.Planets,
		Preview: config.Preview,
	}
}

func newHarness(t *testing.T, mutate func(*Settings)) *harness {
	t.Helper()

	settings := defaultSettings()
	if mutate != nil {
		mutate(&settings)
	}

	h := &harness{
		physics:   newFakePhysics(),
		renderer:  &fakeRenderer{},
		scheduler: NewTickScheduler(),
	}
	s, err := NewSession(Options{
		Settings:  settings,
		Physics:   h.physics,
		Renderer:  h.renderer,
		Scheduler: h.scheduler,
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Logger:    log.New(io.Discard),
	})
	require.NoError(t, err)
	s.Controller().OnTransition(func(from, to State) {
		h.transitions = append(h.transitions, transitionLog{from: from, to: to})
	})
	h.session = s
	return h
}

func (h *harness) waiting(t *testing.T) Projectile {
	t.Helper()
	p, ok := h.session.Controller().Waiting()
	require.True(t, ok, "expected a waiting planet")
	return p
}

func (f *fakePhysics) lockedCircles() int {
	n := 0
	for _, b := range f.bodies {
		if b.circle && b.static {
			n++
		}
	}
	return n
}
