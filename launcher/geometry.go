package launcher

import (
	"math"

	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/shared/gamemath"
)

// GeometrySnapshot is the arena derived from one viewport size. It is replaced
// wholesale on resize and never edited in place.
type GeometrySnapshot struct {
	Width         float64
	Height        float64
	WallThickness float64
	SpawnPoint    gamemath.Vec2
}

// WallSide names one of the arena walls.
type WallSide int

const (
	WallLeft WallSide = iota
	WallRight
	WallGround
)

func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "ground"
	}
}

// WallSpec is a static rectangle, positioned by its centre.
type WallSpec struct {
	Side   WallSide
	Center gamemath.Vec2
	Width  float64
	Height float64
}

// ComputeGeometry derives the arena from the viewport. The spawn point sits at
// the horizontal centre and is kept at least SpawnMinMargin from the top.
func ComputeGeometry(viewportWidth, viewportHeight float64, arena config.ArenaConfig) GeometrySnapshot {
	return GeometrySnapshot{
		Width:         viewportWidth,
		Height:        viewportHeight,
		WallThickness: arena.WallThickness,
		SpawnPoint: gamemath.Vec2{
			X: viewportWidth / 2,
			Y: math.Max(arena.SpawnMinMargin, viewportHeight*arena.SpawnTopFraction),
		},
	}
}

// Walls returns the left, right and ground walls. Each wall's inner face lies
// on the visible arena edge, so its centre is pushed out by half the thickness.
// The ground spans the side walls' outer faces to close the corners.
func (g GeometrySnapshot) Walls() []WallSpec {
	half := g.WallThickness / 2
	return []WallSpec{
		{
			Side:   WallLeft,
			Center: gamemath.Vec2{X: -half, Y: g.Height / 2},
			Width:  g.WallThickness,
			Height: g.Height,
		},
		{
			Side:   WallRight,
			Center: gamemath.Vec2{X: g.Width + half, Y: g.Height / 2},
			Width:  g.WallThickness,
			Height: g.Height,
		},
		{
			Side:   WallGround,
			Center: gamemath.Vec2{X: g.Width / 2, Y: g.Height + half},
			Width:  g.Width + 2*g.WallThickness,
			Height: g.WallThickness,
		},
	}
}

// PreviewBounds are the horizontal limits for a planet of the given radius.
func (g GeometrySnapshot) PreviewBounds(radius float64) gamemath.Bounds {
	return gamemath.Bounds{Width: g.Width, Margin: radius}
}
