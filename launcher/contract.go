package launcher

import (
	"image/color"

	"github.com/automoto/planetdrop/components"
	"github.com/automoto/planetdrop/shared/gamemath"
)

// CircleSpec describes a circular body. Speeds are in pixels per tick.
type CircleSpec struct {
	Position    gamemath.Vec2
	Radius      float64
	Static      bool
	Restitution float64
	Friction    float64
	Density     float64
}

// RectSpec describes a rectangle positioned by its centre.
type RectSpec struct {
	Center      gamemath.Vec2
	Width       float64
	Height      float64
	Static      bool
	Restitution float64
	Friction    float64
}

// Physics is the slice of the physics engine the launcher drives.
type Physics interface {
	CreateCircle(spec CircleSpec) components.BodyID
	CreateRectangle(spec RectSpec) components.BodyID
	RemoveBody(id components.BodyID)
	MakeBodyStatic(id components.BodyID, static bool)
	SetVelocity(id components.BodyID, v gamemath.Vec2)
	SetPosition(id components.BodyID, p gamemath.Vec2)
	// OnBeforeStep registers fn to run before every physics step.
	OnBeforeStep(fn func())
}

// Stroke is a polyline drawing request.
type Stroke struct {
	Points []gamemath.Vec2
	Dash   []float64
	Color  color.RGBA
	Width  float64
}

type Surface interface {
	StrokePolyline(s Stroke)
}

// Renderer calls the registered hook after each frame with the frame's surface.
type Renderer interface {
	OnAfterRender(fn func(Surface))
}
