package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() TrajectoryParams {
	return TrajectoryParams{
		MaxStretch: 160,
		MaxSpeed:   10,
		Steps:      28,
		StepScale:  3,
		Bounds:     Bounds{Width: 400, Margin: 14},
	}
}

func TestPredictTrajectoryStartsAtOrigin(t *testing.T) {
	origin := Vec2{X: 200, Y: 60}
	for _, drag := range []Vec2{{}, {X: 10, Y: 10}, {X: -500, Y: 20}, {X: 0, Y: -160}} {
		points := PredictTrajectory(origin, drag, defaultParams())
		require.Len(t, points, 28)
		assert.Equal(t, origin, points[0])
	}
}

func TestPredictTrajectoryStaysInsideWalls(t *testing.T) {
	p := defaultParams()
	origin := Vec2{X: 200, Y: 60}

	drags := []Vec2{
		{X: 160, Y: 0},
		{X: -160, Y: 10},
		{X: 150, Y: 40},
		{X: -1000, Y: 1},
		{X: 37, Y: 90},
	}
	for _, drag := range drags {
		for i, pt := range PredictTrajectory(origin, drag, p) {
			assert.GreaterOrEqual(t, pt.X, p.Bounds.Min(), "point %d of drag %v", i, drag)
			assert.LessOrEqual(t, pt.X, p.Bounds.Max(), "point %d of drag %v", i, drag)
		}
	}
}

func TestPredictTrajectoryReflectsOffRightWall(t *testing.T) {
	p := defaultParams()
	p.Steps = 10
	// Full stretch to the right: 10px/tick * 3 ticks = 30px per step.
	points := PredictTrajectory(Vec2{X: 200, Y: 60}, Vec2{X: 160, Y: 0}, p)

	assert.InDelta(t, 230, points[1].X, 1e-9)
	assert.InDelta(t, 350, points[5].X, 1e-9)
	assert.InDelta(t, 380, points[6].X, 1e-9)
	assert.InDelta(t, 386, points[7].X, 1e-9) // clamped to width - margin
	assert.InDelta(t, 356, points[8].X, 1e-9) // travelling back left
	for _, pt := range points {
		assert.InDelta(t, 60, pt.Y, 1e-9)
	}
}

func TestPredictTrajectoryConstantVerticalVelocity(t *testing.T) {
	p := defaultParams()
	points := PredictTrajectory(Vec2{X: 200, Y: 60}, Vec2{X: 0, Y: 80}, p)

	for i := 1; i < len(points); i++ {
		assert.InDelta(t, 15, points[i].Y-points[i-1].Y, 1e-9)
		assert.InDelta(t, 200, points[i].X, 1e-9)
	}
}

func TestPredictTrajectoryDegenerateBounds(t *testing.T) {
	p := defaultParams()
	p.Bounds = Bounds{Width: 20, Margin: 14}
	points := PredictTrajectory(Vec2{X: 10, Y: 60}, Vec2{X: 100, Y: 50}, p)
	for _, pt := range points {
		assert.Equal(t, 10.0, pt.X)
	}
}

func TestPredictTrajectoryNoSteps(t *testing.T) {
	p := defaultParams()
	p.Steps = 0
	assert.Empty(t, PredictTrajectory(Vec2{X: 200, Y: 60}, Vec2{X: 1, Y: 1}, p))
}
