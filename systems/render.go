package systems

import (
	"math"

	"github.com/automoto/planetdrop/components"
	cfg "github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/physics"
	"github.com/automoto/planetdrop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Planets further than this outside the screen are skipped.
const cullPadding = 64.0

// DrawArena clears the screen and draws the walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background.Color())

	arena, ok := getArena(ecs)
	if !ok {
		return
	}
	wallColor := cfg.Arena.WallColor.Color()
	arena.World.EachRectangle(func(b *physics.Body) {
		pos := b.Body.Position()
		vector.FillRect(screen,
			float32(pos.X-b.Width/2), float32(pos.Y-b.Height/2),
			float32(b.Width), float32(b.Height),
			wallColor, false)
	})
}

// DrawPlanets renders every tracked planet at its physics position.
func DrawPlanets(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := getArena(ecs)
	if !ok {
		return
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Planet.Each(ecs.World, func(e *donburi.Entry) {
		planet := components.Planet.Get(e)
		pos, ok := arena.World.Position(planet.Body)
		if !ok {
			return
		}
		if pos.X < -cullPadding || pos.X > width+cullPadding || pos.Y < -cullPadding || pos.Y > height+cullPadding {
			return
		}

		r := planet.Radius * components.SpawnFX.Get(e).Scale
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(r), planet.Color, true)

		// A short spoke shows rotation once the planet is free.
		if planet.Mobility == components.Free {
			angle := arena.World.Angle(planet.Body)
			ex := pos.X + math.Cos(angle)*r*0.6
			ey := pos.Y + math.Sin(angle)*r*0.6
			vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(ex), float32(ey), 2, cfg.SlateBlue, true)
		}
	})
}
