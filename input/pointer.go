// Package input turns sampled pointer state into press, drag and release
// calls. It knows nothing about the window system, so hosts sample their own
// devices and feed one Sample per frame.
package input

import "github.com/automoto/planetdrop/shared/gamemath"

// Sample is the pointer state read from the host on one frame, in screen
// coordinates.
type Sample struct {
	Pressed bool
	X, Y    float64
}

// Sink receives pointer events in arena coordinates. *launcher.Session is one.
type Sink interface {
	PointerDown(pos gamemath.Vec2)
	PointerMove(pos gamemath.Vec2)
	PointerUp()
}

// Transform maps screen coordinates onto the arena: arena = (screen - Offset) / Scale.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Identity leaves coordinates unchanged.
var Identity = Transform{Scale: 1}

func (t Transform) Apply(x, y float64) gamemath.Vec2 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return gamemath.Vec2{X: (x - t.OffsetX) / scale, Y: (y - t.OffsetY) / scale}
}

// Translator compares each sample to the previous one. Only the latest
// position is forwarded; moves are reported while the pointer is held.
type Translator struct {
	Transform Transform

	down bool
	last gamemath.Vec2
	// stale is set by Cancel; presses are ignored until the pointer is released.
	stale bool
}

func NewTranslator(t Transform) *Translator {
	return &Translator{Transform: t}
}

func (t *Translator) Feed(s Sample, sink Sink) {
	pos := t.Transform.Apply(s.X, s.Y)

	if t.stale {
		if !s.Pressed {
			t.stale = false
		}
		return
	}

	switch {
	case s.Pressed && !t.down:
		t.down = true
		t.last = pos
		sink.PointerDown(pos)
	case s.Pressed && pos != t.last:
		t.last = pos
		sink.PointerMove(pos)
	case !s.Pressed && t.down:
		t.down = false
		sink.PointerUp()
	}
}

// Down reports whether the pointer is currently held.
func (t *Translator) Down() bool { return t.down }

// Cancel forgets a held pointer without emitting a release, e.g. when the
// window loses focus and the arena is rebuilt. A pointer still held keeps
// being ignored until it is lifted.
func (t *Translator) Cancel() {
	if t.down {
		t.stale = true
	}
	t.down = false
}
