package physics

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Step advances one body by a single frame: tile collision followed by gravity.
// It never fails; a body with no solid tiles nearby simply moves.
func Step(tiles TileQuerier, object *resolv.Object, body *Body, movement math.Vec2) {
	Resolve(tiles, object, body, movement)
	ApplyGravity(body)
}
