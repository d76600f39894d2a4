package physics

import (
	"fmt"

	"github.com/automoto/planetdrop/components"
	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/jakecoffman/cp"
)

// Shape kinds a body can carry.
type Shape int

const (
	Circle Shape = iota
	Rectangle
)

// Body is a Chipmunk body with the collider it was created with.
type Body struct {
	ID     components.BodyID
	Kind   Shape
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
	Width  float64
	Height float64
}

// World runs the arena on a Chipmunk space. Callers work in pixels per tick;
// the world converts to Chipmunk's per-second units using TicksPerSecond.
type World struct {
	space  *cp.Space
	tps    float64
	bodies map[components.BodyID]*Body
	next   components.BodyID
	hooks  []func()
	ticks  uint64
}

func NewWorld(cfg config.PhysicsConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}

	tps := float64(cfg.TicksPerSecond)
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity * tps * tps})
	space.SetDamping(cfg.Damping)

	return &World{
		space:  space,
		tps:    tps,
		bodies: make(map[components.BodyID]*Body),
	}, nil
}

func (w *World) CreateCircle(spec launcher.CircleSpec) components.BodyID {
	body := w.newBody(spec.Static, spec.Position)
	shape := cp.NewCircle(body, spec.Radius, cp.Vector{})
	shape.SetElasticity(spec.Restitution)
	shape.SetFriction(spec.Friction)
	w.space.AddShape(shape)
	// Static bodies ignore the density until they are made dynamic.
	shape.SetDensity(spec.Density)

	return w.track(&Body{Kind: Circle, Body: body, Shape: shape, Radius: spec.Radius})
}

func (w *World) CreateRectangle(spec launcher.RectSpec) components.BodyID {
	body := w.newBody(spec.Static, spec.Center)
	shape := cp.NewBox(body, spec.Width, spec.Height, 0)
	shape.SetElasticity(spec.Restitution)
	shape.SetFriction(spec.Friction)
	w.space.AddShape(shape)
	if !spec.Static {
		shape.SetDensity(1)
	}

	return w.track(&Body{Kind: Rectangle, Body: body, Shape: shape, Width: spec.Width, Height: spec.Height})
}

func (w *World) newBody(static bool, pos gamemath.Vec2) *cp.Body {
	var body *cp.Body
	if static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(0, 0)
	}
	body.SetPosition(pos)
	return w.space.AddBody(body)
}

func (w *World) track(b *Body) components.BodyID {
	w.next++
	b.ID = w.next
	w.bodies[b.ID] = b
	return b.ID
}

// RemoveBody drops the body and its shape. Unknown ids are ignored.
func (w *World) RemoveBody(id components.BodyID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	delete(w.bodies, id)
	w.space.RemoveShape(b.Shape)
	w.space.RemoveBody(b.Body)
}

// MakeBodyStatic switches a body between static and dynamic. A static body
// has infinite mass and moment, so it neither falls nor spins.
func (w *World) MakeBodyStatic(id components.BodyID, static bool) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	if static {
		b.Body.SetType(cp.BODY_STATIC)
	} else {
		b.Body.SetType(cp.BODY_DYNAMIC)
	}
}

// SetVelocity takes pixels per tick.
func (w *World) SetVelocity(id components.BodyID, v gamemath.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.Body.SetVelocityVector(v.Mult(w.tps))
	}
}

func (w *World) SetPosition(id components.BodyID, p gamemath.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.Body.SetPosition(p)
	}
}

func (w *World) OnBeforeStep(fn func()) {
	w.hooks = append(w.hooks, fn)
}

// Step runs the before-step hooks and advances the space by one tick.
func (w *World) Step() {
	for _, fn := range w.hooks {
		fn()
	}
	w.space.Step(1 / w.tps)
	w.ticks++
}

func (w *World) Position(id components.BodyID) (gamemath.Vec2, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return gamemath.Vec2{}, false
	}
	return b.Body.Position(), true
}

// Velocity reports pixels per tick.
func (w *World) Velocity(id components.BodyID) (gamemath.Vec2, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return gamemath.Vec2{}, false
	}
	return b.Body.Velocity().Mult(1 / w.tps), true
}

func (w *World) Angle(id components.BodyID) float64 {
	if b, ok := w.bodies[id]; ok {
		return b.Body.Angle()
	}
	return 0
}

func (w *World) IsStatic(id components.BodyID) bool {
	b, ok := w.bodies[id]
	return ok && b.Body.GetType() == cp.BODY_STATIC
}

func (w *World) Body(id components.BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// EachRectangle visits every rectangle body, walls included.
func (w *World) EachRectangle(fn func(*Body)) {
	for _, b := range w.bodies {
		if b.Kind == Rectangle {
			fn(b)
		}
	}
}

func (w *World) BodyCount() int { return len(w.bodies) }

// Ticks is the number of steps taken.
func (w *World) Ticks() uint64 { return w.ticks }
