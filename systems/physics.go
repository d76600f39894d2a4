package systems

import (
	"time"

	cfg "github.com/automoto/planetdrop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the physics world by one tick, then lets any
// cooldown that came due fire on the same tick.
func UpdatePhysics(ecs *ecs.ECS) {
	arena, ok := getArena(ecs)
	if !ok {
		return
	}
	arena.World.Step()
	arena.Scheduler.Advance(tickDuration())
}

func tickDuration() time.Duration {
	return time.Second / time.Duration(cfg.Physics.TicksPerSecond)
}
