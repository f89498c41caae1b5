package physics

import (
	stdmath "math"

	cfg "github.com/automoto/tileworld/config"
)

// ApplyGravity accelerates the body downward up to terminal velocity. Any floor
// or ceiling contact from the preceding Resolve cancels vertical speed.
func ApplyGravity(body *Body) {
	body.Velocity.Y = stdmath.Min(cfg.Physics.TerminalVelocity, body.Velocity.Y+cfg.Physics.Gravity)

	if body.Collisions.Vertical() {
		body.Velocity.Y = 0
	}
}
