package systems

import (
	"fmt"

	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 18

// DrawHUD prints the launcher state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := getArena(ecs)
	if !ok {
		return
	}
	c := arena.Session.Controller()
	face := fonts.HUD.Get()
	textColor := cfg.HUD.TextColor.Color()

	lines := []string{
		fmt.Sprintf("launched %d", c.Launches()),
		c.State().String(),
	}
	if p, ok := c.Waiting(); ok {
		lines = append(lines, fmt.Sprintf("next: level %d", p.Level))
	}
	if !c.PreviewEnabled() {
		lines = append(lines, "preview off (P)")
	}

	for i, line := range lines {
		text.Draw(screen, line, face, cfg.HUD.MarginX, cfg.HUD.MarginY+i*hudLineHeight, textColor)
	}
}
