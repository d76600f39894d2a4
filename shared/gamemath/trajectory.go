package gamemath

// Bounds are the horizontal limits a previewed point may occupy:
// [Margin, Width-Margin].
type Bounds struct {
	Width  float64
	Margin float64
}

func (b Bounds) Min() float64 { return b.Margin }
func (b Bounds) Max() float64 { return b.Width - b.Margin }

// TrajectoryParams configures PredictTrajectory.
type TrajectoryParams struct {
	MaxStretch float64
	MaxSpeed   float64
	Steps      int     // number of points returned
	StepScale  float64 // ticks advanced per step
	Bounds     Bounds
}

// PredictTrajectory marches a point from origin along the launch velocity the
// drag would produce, reflecting the x velocity off the side walls. The
// velocity stays constant between steps, so this is a drawing aid and not a
// physics forecast.
func PredictTrajectory(origin, drag Vec2, p TrajectoryParams) []Vec2 {
	if p.Steps < 1 {
		return nil
	}

	vel := LaunchVelocity(drag, p.MaxStretch, p.MaxSpeed)
	points := make([]Vec2, 0, p.Steps)
	pos := origin
	points = append(points, pos)

	minX, maxX := p.Bounds.Min(), p.Bounds.Max()
	degenerate := minX > maxX

	for i := 1; i < p.Steps; i++ {
		nextX := pos.X + vel.X*p.StepScale
		switch {
		case degenerate:
			nextX = p.Bounds.Width / 2
		case nextX < minX:
			vel.X = -vel.X
			nextX = minX
		case nextX > maxX:
			vel.X = -vel.X
			nextX = maxX
		}
		pos = Vec2{X: nextX, Y: pos.Y + vel.Y*p.StepScale}
		points = append(points, pos)
	}
	return points
}
