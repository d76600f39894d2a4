package launcher

import "github.com/automoto/planetdrop/shared/gamemath"

// Event is anything the Controller reacts to. Host callbacks are turned into
// events and handed to Controller.Dispatch.
type Event interface {
	eventName() string
}

// PointerDown carries an arena-local pointer position.
type PointerDown struct{ Pos gamemath.Vec2 }

type PointerMove struct{ Pos gamemath.Vec2 }

type PointerUp struct{}

// PreStep fires before every physics step.
type PreStep struct{}

// PostRender fires after the host has drawn a frame.
type PostRender struct{ Surface Surface }

// Resize carries the new viewport size.
type Resize struct{ Width, Height float64 }

// CooldownElapsed is posted by the scheduler. Epoch is the controller epoch
// at the time the cooldown was started.
type CooldownElapsed struct{ Epoch uint64 }

func (PointerDown) eventName() string     { return "pointer_down" }
func (PointerMove) eventName() string     { return "pointer_move" }
func (PointerUp) eventName() string       { return "pointer_up" }
func (PreStep) eventName() string         { return "pre_step" }
func (PostRender) eventName() string      { return "post_render" }
func (Resize) eventName() string          { return "resize" }
func (CooldownElapsed) eventName() string { return "cooldown_elapsed" }
