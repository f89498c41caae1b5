package factory

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy body at an enemy marker. Enemies have no AI; they
// fall and rest like any other body.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newBody(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Physics.SetValue(enemy, components.PhysicsData{})

	return enemy
}
