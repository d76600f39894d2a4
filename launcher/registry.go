package launcher

import (
	"github.com/automoto/planetdrop/archetypes"
	"github.com/automoto/planetdrop/components"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spawnFXStartScale = 0.4
	spawnFXDuration   = 0.25 // seconds
)

// Registry is the side table of planet metadata keyed by physics body id.
// The physics engine never carries game fields; systems read them from here.
type Registry struct {
	ecs    *ecs.ECS
	bodies map[components.BodyID]donburi.Entity
}

func NewRegistry(e *ecs.ECS) *Registry {
	return &Registry{
		ecs:    e,
		bodies: make(map[components.BodyID]donburi.Entity),
	}
}

// Track records a freshly spawned planet and starts its pop-in.
func (r *Registry) Track(p Projectile) *donburi.Entry {
	entry := archetypes.Planet.Spawn(r.ecs)
	components.Planet.SetValue(entry, components.PlanetData{
		Body:     p.ID,
		Level:    p.Level,
		Radius:   p.Radius,
		Color:    p.Color,
		Mobility: p.Mobility,
	})
	components.SpawnFX.SetValue(entry, components.SpawnFXData{
		Tween: gween.New(spawnFXStartScale, 1, spawnFXDuration, ease.OutBack),
		Scale: spawnFXStartScale,
	})
	r.bodies[p.ID] = entry.Entity()
	return entry
}

// Release marks a planet Free. The record stays so the planet keeps being drawn.
func (r *Registry) Release(id components.BodyID, velocity gamemath.Vec2) {
	data, ok := r.Lookup(id)
	if !ok {
		return
	}
	data.Mobility = components.Free
	data.LaunchVelocityX = velocity.X
	data.LaunchVelocityY = velocity.Y
}

// Forget drops the record of a body that no longer exists.
func (r *Registry) Forget(id components.BodyID) {
	entity, ok := r.bodies[id]
	if !ok {
		return
	}
	delete(r.bodies, id)
	if r.ecs.World.Valid(entity) {
		r.ecs.World.Remove(entity)
	}
}

func (r *Registry) Lookup(id components.BodyID) (*components.PlanetData, bool) {
	entity, ok := r.bodies[id]
	if !ok || !r.ecs.World.Valid(entity) {
		return nil, false
	}
	return components.Planet.Get(r.ecs.World.Entry(entity)), true
}

func (r *Registry) Len() int { return len(r.bodies) }

// Each visits every tracked planet.
func (r *Registry) Each(fn func(*components.PlanetData)) {
	for _, entity := range r.bodies {
		if r.ecs.World.Valid(entity) {
			fn(components.Planet.Get(r.ecs.World.Entry(entity)))
		}
	}
}
