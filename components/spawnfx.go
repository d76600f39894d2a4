package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpawnFXData drives the pop-in scale of a freshly spawned planet.
type SpawnFXData struct {
	Tween *gween.Tween // nil once finished
	Scale float64
}

var SpawnFX = donburi.NewComponentType[SpawnFXData]()
