package physics

import (
	"github.com/automoto/tileworld/tilemap"
	"github.com/yohamta/donburi/features/math"
)

// TileQuerier supplies the solid tile boxes near a pixel position.
// *tilemap.Tilemap satisfies it.
type TileQuerier interface {
	PhysicsRectsAround(x, y float64) []tilemap.Rect
}

// Collisions records which sides of a body hit a solid tile during the last
// update. They are cleared at the start of every update.
type Collisions struct {
	Up, Down, Left, Right bool
}

// Vertical reports a floor or ceiling contact.
func (c Collisions) Vertical() bool {
	return c.Up || c.Down
}

// Horizontal reports a wall contact.
func (c Collisions) Horizontal() bool {
	return c.Left || c.Right
}

// Body is the mutable physics state of an entity. Position and size live on the
// entity's resolv.Object.
type Body struct {
	Velocity   math.Vec2
	Collisions Collisions
}
