package systems

import (
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Keyboard bindings for the player body.
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
)

// UpdateInput polls the keyboard and writes the player's movement intent.
// Must run BEFORE UpdateBodies in the system order.
func UpdateInput(ecs *ecs.ECS) {
	left := anyPressed(leftKeys)
	right := anyPressed(rightKeys)
	jump := anyJustPressed(jumpKeys)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		applyInput(components.Physics.Get(e), left, right, jump)
	})
}

func applyInput(body *components.PhysicsData, left, right, jump bool) {
	body.Movement.X = 0
	body.Movement.Y = 0
	if right {
		body.Movement.X += cfg.Player.Speed
	}
	if left {
		body.Movement.X -= cfg.Player.Speed
	}
	if jump {
		body.Velocity.Y = -cfg.Player.JumpSpeed
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
