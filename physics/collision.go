package physics

import (
	stdmath "math"

	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/logger"
	"github.com/automoto/tileworld/tilemap"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Resolve moves object by movement plus the body's velocity and pushes it out of
// any solid tile it lands in, one axis at a time.
//
// The whole horizontal move is resolved before the vertical one is attempted.
// Moving diagonally into the corner of a single tile therefore stops the body
// against the tile's side instead of landing it on top.
func Resolve(tiles TileQuerier, object *resolv.Object, body *Body, movement math.Vec2) {
	body.Collisions = Collisions{}

	dx := movement.X + body.Velocity.X
	dy := movement.Y + body.Velocity.Y

	resolveHorizontal(tiles, object, body, dx)
	resolveVertical(tiles, object, body, dy)

	if body.Collisions != (Collisions{}) && logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.For("physics").WithFields(logrus.Fields{
			"x":          object.X,
			"y":          object.Y,
			"dx":         dx,
			"dy":         dy,
			"collisions": body.Collisions,
		}).Trace("tile contact")
	}
}

func resolveHorizontal(tiles TileQuerier, object *resolv.Object, body *Body, dx float64) {
	object.X += dx
	box := boxOf(object)

	for _, rect := range tiles.PhysicsRectsAround(object.X, object.Y) {
		if !box.Overlaps(rect) {
			continue
		}
		if dx > 0 {
			box.X = rect.X - box.W
			body.Collisions.Right = true
		}
		if dx < 0 {
			box.X = rect.Right()
			body.Collisions.Left = true
		}
	}

	object.X = box.X
}

func resolveVertical(tiles TileQuerier, object *resolv.Object, body *Body, dy float64) {
	object.Y += dy
	box := boxOf(object)
	rects := tiles.PhysicsRectsAround(object.X, object.Y)

	for _, rect := range rects {
		if !box.Overlaps(rect) {
			continue
		}
		if dy > 0 {
			box.Y = rect.Y - box.H
			body.Collisions.Down = true
		}
		if dy < 0 {
			box.Y = rect.Bottom()
			body.Collisions.Up = true
		}
	}

	object.Y = box.Y

	// A body that did not move vertically never overlaps the floor it rests on,
	// so support is detected by flush contact instead.
	if dy == 0 && !body.Collisions.Down && restingOn(box, rects) {
		body.Collisions.Down = true
	}
}

// restingOn reports whether the bottom edge of box lies on the top edge of one
// of rects with some horizontal overlap.
func restingOn(box tilemap.Rect, rects []tilemap.Rect) bool {
	for _, rect := range rects {
		if stdmath.Abs(box.Bottom()-rect.Y) > cfg.Physics.ContactEpsilon {
			continue
		}
		if box.X < rect.Right() && rect.X < box.Right() {
			return true
		}
	}
	return false
}

func boxOf(object *resolv.Object) tilemap.Rect {
	return tilemap.Rect{X: object.X, Y: object.Y, W: object.W, H: object.H}
}
