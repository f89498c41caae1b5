package components

import (
	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Tilemap *tilemap.Tilemap
	Atlas   assets.Atlas
	Source  string // path or slot the tilemap came from

	// Spawn points pulled out of the tilemap when the level was set up.
	PlayerSpawns []tilemap.OffgridTile
	EnemySpawns  []tilemap.OffgridTile
}

var Level = donburi.NewComponentType[LevelData]()
