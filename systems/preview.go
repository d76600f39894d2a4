package systems

import (
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenSurface draws launcher strokes onto an ebiten image.
type ScreenSurface struct {
	Screen *ebiten.Image
}

func (s ScreenSurface) StrokePolyline(st launcher.Stroke) {
	width := float32(st.Width)
	if width <= 0 {
		width = 1
	}
	for _, seg := range gamemath.DashPolyline(st.Points, st.Dash) {
		vector.StrokeLine(s.Screen,
			float32(seg.From.X), float32(seg.From.Y),
			float32(seg.To.X), float32(seg.To.Y),
			width, st.Color, true)
	}
}
