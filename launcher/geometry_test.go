package launcher

import (
	"testing"

	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGeometrySpawnPoint(t *testing.T) {
	arena := config.ArenaConfig{WallThickness: 20, SpawnTopFraction: 0.1, SpawnMinMargin: 60}

	tests := []struct {
		name          string
		width, height float64
		want          gamemath.Vec2
	}{
		{"short viewport keeps the margin", 400, 600, gamemath.Vec2{X: 200, Y: 60}},
		{"tall viewport uses the fraction", 800, 1000, gamemath.Vec2{X: 400, Y: 100}},
		{"tiny viewport", 50, 80, gamemath.Vec2{X: 25, Y: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeGeometry(tt.width, tt.height, arena)
			assert.Equal(t, tt.want, g.SpawnPoint)
			assert.Equal(t, tt.width, g.Width)
			assert.Equal(t, tt.height, g.Height)
			assert.Equal(t, 20.0, g.WallThickness)
		})
	}
}

func TestWallsInnerFacesOnArenaEdges(t *testing.T) {
	g := ComputeGeometry(400, 600, config.ArenaConfig{WallThickness: 20, SpawnTopFraction: 0.1, SpawnMinMargin: 60})
	walls := g.Walls()
	require.Len(t, walls, 3)

	left, right, ground := walls[0], walls[1], walls[2]
	assert.Equal(t, WallLeft, left.Side)
	assert.Equal(t, 0.0, left.Center.X+left.Width/2)
	assert.Equal(t, WallRight, right.Side)
	assert.Equal(t, 400.0, right.Center.X-right.Width/2)
	assert.Equal(t, WallGround, ground.Side)
	assert.Equal(t, 600.0, ground.Center.Y-ground.Height/2)
	assert.Equal(t, 440.0, ground.Width)
	assert.Equal(t, "ground", ground.Side.String())
}
