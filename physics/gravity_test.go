package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name       string
		vy         float64
		collisions Collisions
		want       float64
	}{
		{"accelerates", 1.0, Collisions{}, 1.1},
		{"clamps at terminal velocity", 4.95, Collisions{}, 5.0},
		{"stays at terminal velocity", 5.0, Collisions{}, 5.0},
		{"rising slows", -3.0, Collisions{}, -2.9},
		{"floor cancels", 3.0, Collisions{Down: true}, 0},
		{"ceiling cancels", -3.0, Collisions{Up: true}, 0},
		{"walls do not cancel", 2.0, Collisions{Left: true, Right: true}, 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &Body{Velocity: math.Vec2{X: 1.5, Y: tt.vy}, Collisions: tt.collisions}
			ApplyGravity(body)

			assert.InDelta(t, tt.want, body.Velocity.Y, 1e-12)
			assert.Equal(t, 1.5, body.Velocity.X, "no horizontal drag")
		})
	}
}

func TestFreeFallReachesTerminalVelocity(t *testing.T) {
	body := &Body{}
	for i := 0; i < 200; i++ {
		ApplyGravity(body)
		assert.LessOrEqual(t, body.Velocity.Y, 5.0)
	}
	assert.Equal(t, 5.0, body.Velocity.Y)
}

func TestCollisionsHelpers(t *testing.T) {
	assert.True(t, Collisions{Up: true}.Vertical())
	assert.True(t, Collisions{Down: true}.Vertical())
	assert.False(t, Collisions{Left: true}.Vertical())
	assert.True(t, Collisions{Right: true}.Horizontal())
	assert.False(t, Collisions{}.Horizontal())
}
