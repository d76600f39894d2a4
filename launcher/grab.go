package launcher

import (
	"math"

	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/automoto/planetdrop/tags"
	"github.com/solarlune/resolv"
)

const grabCellSize = 16

// GrabZone answers whether a pointer-down lands on the waiting planet. A
// resolv space does the broad phase against the planet's bounding square and
// a distance check settles the corners.
type GrabZone struct {
	space   *resolv.Space
	zone    *resolv.Object
	pointer *resolv.Object
	center  gamemath.Vec2
	reach   float64
}

// NewGrabZone covers an arena of the given size.
func NewGrabZone(width, height float64) *GrabZone {
	cellsW := int(math.Ceil(width/grabCellSize)) * grabCellSize
	cellsH := int(math.Ceil(height/grabCellSize)) * grabCellSize
	return &GrabZone{
		space:   resolv.NewSpace(max(cellsW, grabCellSize), max(cellsH, grabCellSize), grabCellSize, grabCellSize),
		pointer: resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer),
	}
}

// Place moves the zone onto a circle of the given reach around center.
func (g *GrabZone) Place(center gamemath.Vec2, reach float64) {
	g.Clear()
	g.center = center
	g.reach = reach
	g.zone = resolv.NewObject(center.X-reach, center.Y-reach, reach*2, reach*2, tags.ResolvGrab)
	g.space.Add(g.zone)
}

// Clear removes the zone; Contains is false until the next Place.
func (g *GrabZone) Clear() {
	if g.zone != nil {
		g.space.Remove(g.zone)
		g.zone = nil
	}
}

func (g *GrabZone) Contains(pos gamemath.Vec2) bool {
	if g.zone == nil {
		return false
	}

	g.pointer.X = pos.X
	g.pointer.Y = pos.Y
	g.space.Add(g.pointer)
	defer g.space.Remove(g.pointer)

	if check := g.pointer.Check(0, 0, tags.ResolvGrab); check == nil {
		return false
	}
	return pos.Distance(g.center) <= g.reach
}
