package systems

import (
	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls the key bindings and updates the Input component.
// Must run BEFORE UpdateSettings in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}
}

// UpdatePointer samples the mouse, or the first touch when there is one, and
// feeds it to the session. The screen and the arena share one coordinate
// space because Layout reports the window size unchanged.
func UpdatePointer(ecs *ecs.ECS) {
	arena, ok := getArena(ecs)
	if !ok {
		return
	}
	arena.Translator.Feed(samplePointer(), arena.Session)
}

func samplePointer() input.Sample {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return input.Sample{Pressed: true, X: float64(x), Y: float64(y)}
	}

	x, y := ebiten.CursorPosition()
	return input.Sample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       float64(x),
		Y:       float64(y),
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(in *components.InputData, id cfg.ActionID) components.ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
