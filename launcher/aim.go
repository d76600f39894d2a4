package launcher

import "github.com/automoto/planetdrop/shared/gamemath"

// AimTracker follows one pull-back gesture. It only tracks the pointer; the
// Controller decides whether a gesture may start at all.
type AimTracker struct {
	active  bool
	current gamemath.Vec2
}

// Begin starts a gesture at pos. It reports false if one is already active.
func (a *AimTracker) Begin(pos gamemath.Vec2) bool {
	if a.active {
		return false
	}
	a.active = true
	a.current = pos
	return true
}

// Update moves the gesture to pos. Only the latest position is kept.
func (a *AimTracker) Update(pos gamemath.Vec2) {
	if !a.active {
		return
	}
	a.current = pos
}

// Drag returns the clamped pull-back vector spawn-current without ending the
// gesture. Pulling away from spawn yields the opposite vector, so the planet
// flies away from the pointer.
func (a *AimTracker) Drag(spawn gamemath.Vec2, maxStretch float64) gamemath.Vec2 {
	if !a.active {
		return gamemath.Vec2{}
	}
	return gamemath.ClampMagnitude(spawn.Sub(a.current), maxStretch)
}

// End returns the final drag vector and deactivates the gesture. Ending an
// inactive gesture returns the zero vector.
func (a *AimTracker) End(spawn gamemath.Vec2, maxStretch float64) gamemath.Vec2 {
	drag := a.Drag(spawn, maxStretch)
	a.Reset()
	return drag
}

func (a *AimTracker) Reset() {
	a.active = false
	a.current = gamemath.Vec2{}
}

func (a *AimTracker) Active() bool { return a.active }

// Current is the last pointer position seen by an active gesture.
func (a *AimTracker) Current() gamemath.Vec2 { return a.current }
