package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// BodyID identifies a body inside the physics engine.
type BodyID uint64

// Mobility tracks whether a planet is still held at the spawn point.
type Mobility int

const (
	Locked Mobility = iota
	Free
)

func (m Mobility) String() string {
	if m == Locked {
		return "locked"
	}
	return "free"
}

// PlanetData is the side-table record for a planet body. The physics engine
// owns the body itself; this is everything the game knows about it.
type PlanetData struct {
	Body     BodyID
	Level    int
	Radius   float64
	Color    color.RGBA
	Mobility Mobility
	// LaunchVelocity is the velocity handed to the engine at release, in pixels per tick.
	LaunchVelocityX float64
	LaunchVelocityY float64
}

var Planet = donburi.NewComponentType[PlanetData]()
