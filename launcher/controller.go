package launcher

import (
	"github.com/automoto/planetdrop/components"
	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/charmbracelet/log"
)

// State is the launcher's lifecycle state.
type State int

const (
	Idle     State = iota // no planet, about to spawn
	Waiting               // a locked planet sits at the spawn point
	Aiming                // a gesture is pulling the locked planet
	Cooldown              // a planet was launched, the next spawn is deferred
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Waiting:
		return "waiting"
	case Aiming:
		return "aiming"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Settings groups the tunables the controller reads. They are copied at
// construction so later config edits do not leak into a running session.
type Settings struct {
	Arena   config.ArenaConfig
	Launch  config.LaunchConfig
	Planets config.PlanetConfig
	Preview config.PreviewConfig
}

// Controller owns the spawn, aim, launch and cooldown cycle. Every change goes
// through Dispatch, which runs on the game goroutine only.
type Controller struct {
	settings  Settings
	physics   Physics
	scheduler Scheduler
	factory   *Factory
	registry  *Registry
	logger    *log.Logger

	geometry GeometrySnapshot
	walls    []components.BodyID
	grab     *GrabZone

	state   State
	waiting *Projectile
	aim     AimTracker

	// epoch is bumped on every hard reset; a cooldown carries the epoch it was
	// started in and is dropped if they no longer match.
	epoch    uint64
	launches int
	preview  bool

	onTransition func(from, to State)
}

func newController(settings Settings, physics Physics, scheduler Scheduler, factory *Factory, registry *Registry, logger *log.Logger) *Controller {
	settings.Preview.Dash = append([]float64(nil), settings.Preview.Dash...)
	settings.Planets.Levels = append([]config.PlanetLevel(nil), settings.Planets.Levels...)
	settings.Planets.SpawnWeights = append([]config.SpawnWeight(nil), settings.Planets.SpawnWeights...)
	return &Controller{
		settings:  settings,
		physics:   physics,
		scheduler: scheduler,
		factory:   factory,
		registry:  registry,
		logger:    logger,
		preview:   settings.Preview.Enabled,
	}
}

// Dispatch applies one event to the state machine.
func (c *Controller) Dispatch(ev Event) {
	switch e := ev.(type) {
	case PointerDown:
		c.pointerDown(e.Pos)
	case PointerMove:
		if c.state == Aiming {
			c.aim.Update(e.Pos)
		}
	case PointerUp:
		if c.state == Aiming {
			c.launch()
		}
	case PreStep:
		c.holdWaiting()
	case PostRender:
		c.drawPreview(e.Surface)
	case Resize:
		c.resize(e.Width, e.Height)
	case CooldownElapsed:
		c.cooldownElapsed(e.Epoch)
	default:
		c.logger.Debug("ignoring unknown event", "event", ev)
	}
}

// start builds the first arena and spawns the first planet.
func (c *Controller) start(width, height float64) {
	c.discardWaiting()
	c.rebuild(width, height)
	c.spawn()
}

func (c *Controller) pointerDown(pos gamemath.Vec2) {
	if c.state != Waiting || c.waiting == nil {
		c.logger.Debug("pointer down ignored", "state", c.state)
		return
	}
	if !c.settings.Launch.GrabAnywhere && !c.grab.Contains(pos) {
		c.logger.Debug("pointer down missed the waiting planet", "x", pos.X, "y", pos.Y)
		return
	}

	if c.settings.Launch.Mode == config.LaunchModeDrop {
		c.drop(pos)
		return
	}
	if c.aim.Begin(pos) {
		c.transition(Aiming)
	}
}

// holdWaiting pins the waiting planet while it is being aimed. The body is
// already static; this also undoes any solver drift.
func (c *Controller) holdWaiting() {
	if c.state != Aiming || c.waiting == nil {
		return
	}
	c.physics.SetPosition(c.waiting.ID, c.waiting.Position)
	c.physics.SetVelocity(c.waiting.ID, gamemath.Vec2{})
}

func (c *Controller) drawPreview(surface Surface) {
	if !c.preview || surface == nil {
		return
	}
	points := c.Preview()
	if len(points) == 0 {
		return
	}
	surface.StrokePolyline(Stroke{
		Points: points,
		Dash:   c.settings.Preview.Dash,
		Color:  c.settings.Preview.Color.Color(),
		Width:  c.settings.Preview.Width,
	})
}

func (c *Controller) trajectoryParams() gamemath.TrajectoryParams {
	return gamemath.TrajectoryParams{
		MaxStretch: c.settings.Launch.MaxStretch,
		MaxSpeed:   c.settings.Launch.MaxSpeed,
		Steps:      c.settings.Preview.Steps,
		StepScale:  c.settings.Preview.StepScale,
		Bounds:     c.geometry.PreviewBounds(c.waiting.Radius),
	}
}

func (c *Controller) launch() {
	drag := c.aim.End(c.geometry.SpawnPoint, c.settings.Launch.MaxStretch)
	c.release(gamemath.LaunchVelocity(drag, c.settings.Launch.MaxStretch, c.settings.Launch.MaxSpeed))
}

// drop releases the waiting planet straight down from the pointer's column.
func (c *Controller) drop(pos gamemath.Vec2) {
	bounds := c.geometry.PreviewBounds(c.waiting.Radius)
	x := c.geometry.Width / 2
	if bounds.Min() <= bounds.Max() {
		x = gamemath.ClampFloat(pos.X, bounds.Min(), bounds.Max())
	}
	c.waiting.Position = gamemath.Vec2{X: x, Y: c.geometry.SpawnPoint.Y}
	c.physics.SetPosition(c.waiting.ID, c.waiting.Position)
	c.release(gamemath.Vec2{})
}

// release hands the waiting planet to the physics engine and starts the
// cooldown. The core keeps no reference to the planet afterwards.
func (c *Controller) release(velocity gamemath.Vec2) {
	p := c.waiting
	c.physics.MakeBodyStatic(p.ID, false)
	c.physics.SetVelocity(p.ID, velocity)
	c.registry.Release(p.ID, velocity)
	c.waiting = nil
	c.grab.Clear()
	c.launches++

	c.logger.Info("planet launched", "body", p.ID, "level", p.Level, "vx", velocity.X, "vy", velocity.Y)
	c.transition(Cooldown)

	epoch := c.epoch
	c.scheduler.After(c.settings.Launch.Cooldown, func() {
		c.Dispatch(CooldownElapsed{Epoch: epoch})
	})
}

func (c *Controller) cooldownElapsed(epoch uint64) {
	if c.state != Cooldown || epoch != c.epoch {
		c.logger.Debug("dropping stale cooldown", "epoch", epoch, "current", c.epoch, "state", c.state)
		return
	}
	c.transition(Idle)
	c.spawn()
}

func (c *Controller) spawn() {
	p := c.factory.CreateWaiting(c.geometry.SpawnPoint)
	p.ID = c.physics.CreateCircle(CircleSpec{
		Position:    p.Position,
		Radius:      p.Radius,
		Static:      true,
		Restitution: c.settings.Planets.Restitution,
		Friction:    c.settings.Planets.Friction,
		Density:     c.settings.Planets.Density,
	})
	c.registry.Track(p)
	c.waiting = &p
	c.grab.Place(p.Position, p.Radius+c.settings.Launch.GrabSlack)

	c.logger.Info("planet spawned", "body", p.ID, "level", p.Level, "radius", p.Radius)
	c.transition(Waiting)
}

// resize throws away the waiting planet and every wall, then starts over on
// the new geometry. Planets already in flight stay with the physics engine.
func (c *Controller) resize(width, height float64) {
	if width <= 0 || height <= 0 {
		c.logger.Debug("ignoring empty resize", "width", width, "height", height)
		return
	}

	c.discardWaiting()
	c.epoch++
	c.rebuild(width, height)
	c.transition(Idle)
	c.spawn()
}

// discardWaiting drops the locked planet and any gesture on it.
func (c *Controller) discardWaiting() {
	c.aim.Reset()
	if c.waiting == nil {
		return
	}
	c.physics.RemoveBody(c.waiting.ID)
	c.registry.Forget(c.waiting.ID)
	c.waiting = nil
}

func (c *Controller) rebuild(width, height float64) {
	for _, id := range c.walls {
		c.physics.RemoveBody(id)
	}
	c.walls = c.walls[:0]

	c.geometry = ComputeGeometry(width, height, c.settings.Arena)
	for _, w := range c.geometry.Walls() {
		c.walls = append(c.walls, c.physics.CreateRectangle(RectSpec{
			Center:      w.Center,
			Width:       w.Width,
			Height:      w.Height,
			Static:      true,
			Restitution: c.settings.Arena.WallRestitution,
			Friction:    c.settings.Planets.Friction,
		}))
	}
	c.grab = NewGrabZone(width, height)
	c.logger.Debug("arena built", "width", width, "height", height, "spawnX", c.geometry.SpawnPoint.X, "spawnY", c.geometry.SpawnPoint.Y)
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("state transition", "from", from, "to", to)
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}

func (c *Controller) State() State { return c.state }

// Waiting returns a copy of the waiting planet, if there is one.
func (c *Controller) Waiting() (Projectile, bool) {
	if c.waiting == nil {
		return Projectile{}, false
	}
	return *c.waiting, true
}

func (c *Controller) Geometry() GeometrySnapshot { return c.geometry }

func (c *Controller) Walls() []components.BodyID {
	return append([]components.BodyID(nil), c.walls...)
}

func (c *Controller) Epoch() uint64 { return c.epoch }

// Launches counts released planets since the session started.
func (c *Controller) Launches() int { return c.launches }

func (c *Controller) Aim() *AimTracker { return &c.aim }

// Preview returns the path the waiting planet would take if released now,
// or nil when nothing is being aimed.
func (c *Controller) Preview() []gamemath.Vec2 {
	if c.state != Aiming || c.waiting == nil {
		return nil
	}
	return gamemath.PredictTrajectory(c.waiting.Position, c.aim.Drag(c.geometry.SpawnPoint, c.settings.Launch.MaxStretch), c.trajectoryParams())
}

func (c *Controller) PreviewEnabled() bool { return c.preview }

// OnTransition registers an observer called after every state change.
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.onTransition = fn
}
