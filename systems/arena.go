package systems

import (
	"github.com/automoto/planetdrop/input"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaData is the singleton that ties the ECS to the play session.
type ArenaData struct {
	World      *physics.World
	Scheduler  *launcher.TickScheduler
	Session    *launcher.Session
	Translator *input.Translator
}

var Arena = donburi.NewComponentType[ArenaData]()

// CreateArena stores the session collaborators on a singleton entity.
func CreateArena(e *ecs.ECS, data ArenaData) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(Arena))
	Arena.SetValue(entry, data)
	return entry
}

func getArena(e *ecs.ECS) (*ArenaData, bool) {
	entry, ok := Arena.First(e.World)
	if !ok {
		return nil, false
	}
	return Arena.Get(entry), true
}
