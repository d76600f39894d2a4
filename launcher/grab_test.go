package launcher

import (
	"testing"

	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestGrabZoneContains(t *testing.T) {
	g := NewGrabZone(400, 600)
	center := gamemath.Vec2{X: 200, Y: 60}
	assert.False(t, g.Contains(center), "nothing placed yet")

	g.Place(center, 38)

	tests := []struct {
		name string
		pos  gamemath.Vec2
		want bool
	}{
		{"centre", center, true},
		{"inside reach", gamemath.Vec2{X: 230, Y: 60}, true},
		{"bounding box corner", gamemath.Vec2{X: 230, Y: 90}, false},
		{"far away", gamemath.Vec2{X: 300, Y: 400}, false},
		{"outside arena", gamemath.Vec2{X: -50, Y: -50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Contains(tt.pos))
		})
	}

	g.Clear()
	assert.False(t, g.Contains(center))
}

func TestGrabZoneFollowsPlace(t *testing.T) {
	g := NewGrabZone(400, 600)
	g.Place(gamemath.Vec2{X: 50, Y: 50}, 20)
	g.Place(gamemath.Vec2{X: 300, Y: 300}, 20)

	assert.False(t, g.Contains(gamemath.Vec2{X: 50, Y: 50}))
	assert.True(t, g.Contains(gamemath.Vec2{X: 310, Y: 300}))
}
