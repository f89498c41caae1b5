package factory

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Spawner variants placed by the level editor.
const (
	PlayerSpawnVariant = 0
	EnemySpawnVariant  = 1
)

// CreateLevel spawns the level entity for tm. The tilemap is autotiled and its
// spawner tiles are pulled out into PlayerSpawns and EnemySpawns, so they are
// neither drawn nor kept in the map.
func CreateLevel(ecs *ecs.ECS, tm *tilemap.Tilemap, atlas assets.Atlas, source string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	tm.Autotile()

	levelData := &components.LevelData{
		Tilemap: tm,
		Atlas:   atlas,
		Source:  source,
	}
	for _, spawn := range tm.Extract([]tilemap.Pair{
		{Type: tilemap.Spawners, Variant: PlayerSpawnVariant},
		{Type: tilemap.Spawners, Variant: EnemySpawnVariant},
	}, false) {
		if spawn.Variant == PlayerSpawnVariant {
			levelData.PlayerSpawns = append(levelData.PlayerSpawns, spawn)
		} else {
			levelData.EnemySpawns = append(levelData.EnemySpawns, spawn)
		}
	}

	components.Level.Set(level, levelData)
	return level
}
