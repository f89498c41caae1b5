package systems

import (
	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies steps every body once against the level tilemap, consuming the
// movement intent written earlier in the frame.
func UpdateBodies(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tilemap == nil {
		return
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		body := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.Step(level.Tilemap, obj.Object, &body.Body, body.Movement)
	})
}
