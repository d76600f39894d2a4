package systems

import (
	"fmt"

	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the grab zone and prints engine counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDebug && !cfg.Debug.ShowGrabZone {
		return
	}
	arena, ok := getArena(ecs)
	if !ok {
		return
	}

	c := arena.Session.Controller()
	if p, ok := c.Waiting(); ok {
		reach := p.Radius + cfg.Launch.GrabSlack
		vector.StrokeCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(reach), 1, cfg.Cyan, true)
	}

	info := fmt.Sprintf("bodies %d  tick %d  epoch %d  tps %.0f",
		arena.World.BodyCount(), arena.World.Ticks(), c.Epoch(), ebiten.ActualTPS())
	text.Draw(screen, info, fonts.Small.Get(), cfg.HUD.MarginX, screen.Bounds().Dy()-cfg.HUD.MarginX, cfg.Cyan)
}
