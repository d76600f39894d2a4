package systems

import (
	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawnFX advances the pop-in tween of freshly spawned planets.
func UpdateSpawnFX(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.Physics.TicksPerSecond)
	tags.Planet.Each(ecs.World, func(entry *donburi.Entry) {
		fx := components.SpawnFX.Get(entry)
		if fx.Tween == nil {
			return
		}
		scale, done := fx.Tween.Update(dt)
		fx.Scale = float64(scale)
		if done {
			fx.Tween = nil
			fx.Scale = 1
		}
	})
}
