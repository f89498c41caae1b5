package factory

import (
	"testing"

	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/automoto/tileworld/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestCreatePlayer(t *testing.T) {
	e := newECS()
	player := CreatePlayer(e, 24, 8)

	assert.True(t, player.HasComponent(tags.Player))
	obj := components.Object.Get(player)
	assert.Equal(t, 24.0, obj.X)
	assert.Equal(t, 8.0, obj.Y)
	assert.Equal(t, cfg.Player.CollisionWidth, obj.W)
	assert.Equal(t, cfg.Player.CollisionHeight, obj.H)
	assert.True(t, obj.HasTags(tags.ResolvPlayer))
	assert.Equal(t, player, obj.Data)

	body := components.Physics.Get(player)
	assert.Zero(t, body.Velocity)
	assert.Zero(t, body.Movement)
}

func TestCreateEnemy(t *testing.T) {
	e := newECS()
	enemy := CreateEnemy(e, 0, 0)

	assert.True(t, enemy.HasComponent(tags.Enemy))
	assert.False(t, enemy.HasComponent(tags.Player))
	assert.True(t, components.Object.Get(enemy).HasTags(tags.ResolvEnemy))
}

func TestCreateCamera(t *testing.T) {
	e := newECS()
	CreateCamera(e, math.Vec2{X: 3, Y: 4})

	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	assert.Equal(t, math.Vec2{X: 3, Y: 4}, components.Camera.Get(entry).Offset)
}

func TestCreateLevelExtractsSpawners(t *testing.T) {
	tm := tilemap.New(16)
	for x := 0; x < 2; x++ {
		for y := 4; y < 6; y++ {
			tm.Put(tilemap.Tile{Type: tilemap.Grass, Variant: 8, Pos: tilemap.Key{X: x, Y: y}})
		}
	}
	tm.Put(tilemap.Tile{Type: tilemap.Spawners, Variant: PlayerSpawnVariant, Pos: tilemap.Key{X: 1, Y: 2}})
	tm.Put(tilemap.Tile{Type: tilemap.Spawners, Variant: EnemySpawnVariant, Pos: tilemap.Key{X: 2, Y: 2}})
	tm.Put(tilemap.Tile{Type: tilemap.Spawners, Variant: 4, Pos: tilemap.Key{X: 0, Y: 0}})
	tm.AddOffgrid(tilemap.OffgridTile{Type: tilemap.Spawners, Variant: EnemySpawnVariant, Pos: math.Vec2{X: 40.5, Y: 3}})

	e := newECS()
	level := CreateLevel(e, tm, assets.NewPlaceholderAtlas(16), "test.json")
	data := components.Level.Get(level)

	assert.Equal(t, "test.json", data.Source)
	assert.Equal(t, []tilemap.OffgridTile{
		{Type: tilemap.Spawners, Variant: PlayerSpawnVariant, Pos: math.Vec2{X: 16, Y: 32}},
	}, data.PlayerSpawns)
	assert.Equal(t, []tilemap.OffgridTile{
		{Type: tilemap.Spawners, Variant: EnemySpawnVariant, Pos: math.Vec2{X: 40.5, Y: 3}},
		{Type: tilemap.Spawners, Variant: EnemySpawnVariant, Pos: math.Vec2{X: 32, Y: 32}},
	}, data.EnemySpawns)

	// Only the unrequested spawner variant stays in the grid.
	assert.Equal(t, 5, tm.Len())
	assert.Empty(t, tm.Offgrid())

	// The 2x2 grass block is autotiled into its four corners.
	for k, want := range map[tilemap.Key]int{
		{X: 0, Y: 4}: 0,
		{X: 1, Y: 4}: 2,
		{X: 0, Y: 5}: 6,
		{X: 1, Y: 5}: 4,
	} {
		tile, ok := tm.At(k)
		require.True(t, ok)
		assert.Equal(t, want, tile.Variant, "variant at %s", k)
	}
}
