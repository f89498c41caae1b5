package systems

import (
	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the viewport toward the player so the player's center ends
// up in the middle of the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, keep the last view
	}
	playerObject := components.Object.Get(playerEntry)

	targetX := playerObject.X + playerObject.W/2 - float64(config.C.Width)/2
	targetY := playerObject.Y + playerObject.H/2 - float64(config.C.Height)/2

	divisor := config.Camera.FollowDivisor
	if divisor < 1 {
		divisor = 1
	}
	camera.Offset.X += (targetX - camera.Offset.X) / divisor
	camera.Offset.Y += (targetY - camera.Offset.Y) / divisor
}
