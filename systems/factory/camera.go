package factory

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera with its viewport at offset.
func CreateCamera(ecs *ecs.ECS, offset math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Offset: offset})
	return camera
}
