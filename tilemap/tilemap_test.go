package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func grass(x, y int) Tile {
	return Tile{Type: Grass, Pos: Key{X: x, Y: y}}
}

func TestPutOverwritesCell(t *testing.T) {
	tm := New(16)
	tm.Put(Tile{Type: Grass, Variant: 1, Pos: Key{2, 3}})
	tm.Put(Tile{Type: Stone, Variant: 4, Pos: Key{2, 3}})

	require.Equal(t, 1, tm.Len())
	tile, ok := tm.At(Key{2, 3})
	require.True(t, ok)
	assert.Equal(t, Tile{Type: Stone, Variant: 4, Pos: Key{2, 3}}, tile)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	tm := New(16)
	tm.Put(grass(0, 0))
	tm.Remove(Key{5, 5})
	tm.Remove(Key{0, 0})
	tm.Remove(Key{0, 0})

	assert.Equal(t, 0, tm.Len())
	_, ok := tm.At(Key{0, 0})
	assert.False(t, ok)
}

func TestTilesReturnsCopy(t *testing.T) {
	tm := New(16)
	tm.Put(grass(1, 1))

	tiles := tm.Tiles()
	tiles[Key{1, 1}] = Tile{Type: Stone, Pos: Key{1, 1}}
	delete(tiles, Key{1, 1})

	tile, ok := tm.At(Key{1, 1})
	require.True(t, ok)
	assert.Equal(t, Grass, tile.Type)
}

func TestCellAtFloorsNegativeCoordinates(t *testing.T) {
	tm := New(16)
	tests := []struct {
		x, y float64
		want Key
	}{
		{0, 0, Key{0, 0}},
		{15.9, 16, Key{0, 1}},
		{-0.5, -16, Key{-1, -1}},
		{-16.1, 31.99, Key{-2, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tm.CellAt(tt.x, tt.y), "CellAt(%v, %v)", tt.x, tt.y)
	}
}

func TestTilesAroundCoversThreeByThree(t *testing.T) {
	tm := New(16)
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			tm.Put(grass(x, y))
		}
	}

	// (8, 8) sits in cell (0, 0).
	around := tm.TilesAround(8, 8)
	require.Len(t, around, 9)

	seen := map[Key]bool{}
	for _, tile := range around {
		assert.LessOrEqual(t, abs(tile.Pos.X), 1)
		assert.LessOrEqual(t, abs(tile.Pos.Y), 1)
		seen[tile.Pos] = true
	}
	assert.Len(t, seen, 9)
}

func TestTilesAroundSkipsEmptyCells(t *testing.T) {
	tm := New(16)
	tm.Put(grass(1, 1))
	tm.Put(grass(3, 3))

	around := tm.TilesAround(0, 0)
	require.Len(t, around, 1)
	assert.Equal(t, Key{1, 1}, around[0].Pos)

	assert.Empty(t, tm.TilesAround(-100, -100))
}

func TestPhysicsRectsAroundFiltersTypes(t *testing.T) {
	tm := New(16)
	tm.Put(Tile{Type: Stone, Pos: Key{1, 1}})
	tm.Put(Tile{Type: Decor, Pos: Key{0, 1}})
	tm.Put(Tile{Type: Spawners, Pos: Key{1, 0}})

	rects := tm.PhysicsRectsAround(4, 4)
	require.Len(t, rects, 1)
	assert.Equal(t, Rect{X: 16, Y: 16, W: 16, H: 16}, rects[0])
}

func TestSolidAt(t *testing.T) {
	tm := New(16)
	tm.Put(Tile{Type: Stone, Pos: Key{2, 0}})
	tm.Put(Tile{Type: LargeDecor, Pos: Key{3, 0}})

	tile, ok := tm.SolidAt(33, 15)
	require.True(t, ok)
	assert.Equal(t, Key{2, 0}, tile.Pos)

	_, ok = tm.SolidAt(50, 2)
	assert.False(t, ok, "decor is not solid")

	_, ok = tm.SolidAt(-1, 2)
	assert.False(t, ok)
}

func TestExtractRemovesMatches(t *testing.T) {
	tm := New(16)
	tm.Put(Tile{Type: Spawners, Variant: 0, Pos: Key{3, 2}})
	tm.Put(Tile{Type: Spawners, Variant: 1, Pos: Key{-1, 4}})
	tm.Put(Tile{Type: Spawners, Variant: 2, Pos: Key{0, 0}})
	tm.Put(grass(5, 5))
	tm.AddOffgrid(OffgridTile{Type: Spawners, Variant: 1, Pos: math.Vec2{X: 7.5, Y: 3}})
	tm.AddOffgrid(OffgridTile{Type: Decor, Variant: 1, Pos: math.Vec2{X: 1, Y: 1}})

	pairs := []Pair{{Spawners, 0}, {Spawners, 1}}
	got := tm.Extract(pairs, false)

	assert.Equal(t, []OffgridTile{
		{Type: Spawners, Variant: 1, Pos: math.Vec2{X: 7.5, Y: 3}},
		{Type: Spawners, Variant: 0, Pos: math.Vec2{X: 48, Y: 32}},
		{Type: Spawners, Variant: 1, Pos: math.Vec2{X: -16, Y: 64}},
	}, got)

	assert.Equal(t, 2, tm.Len())
	_, ok := tm.At(Key{3, 2})
	assert.False(t, ok)
	_, ok = tm.At(Key{0, 0})
	assert.True(t, ok, "unrequested variant stays")
	assert.Equal(t, []OffgridTile{{Type: Decor, Variant: 1, Pos: math.Vec2{X: 1, Y: 1}}}, tm.Offgrid())
}

func TestExtractKeepLeavesStoreUnchanged(t *testing.T) {
	tm := New(16)
	tm.Put(Tile{Type: Spawners, Pos: Key{1, 2}})
	tm.AddOffgrid(OffgridTile{Type: Spawners, Pos: math.Vec2{X: 3, Y: 4}})

	beforeTiles, beforeOffgrid := tm.Tiles(), tm.Offgrid()
	got := tm.Extract([]Pair{{Spawners, 0}}, true)

	require.Len(t, got, 2)
	assert.Equal(t, math.Vec2{X: 16, Y: 32}, got[1].Pos)
	assert.Equal(t, beforeTiles, tm.Tiles())
	assert.Equal(t, beforeOffgrid, tm.Offgrid())

	got[0].Pos.X = 999
	got[1].Variant = 7
	assert.Equal(t, beforeTiles, tm.Tiles(), "mutating a match must not touch the map")
	assert.Equal(t, beforeOffgrid, tm.Offgrid())
}

func TestExtractNoMatch(t *testing.T) {
	tm := New(16)
	tm.Put(grass(0, 0))
	tm.AddOffgrid(OffgridTile{Type: Decor})

	assert.Empty(t, tm.Extract([]Pair{{Spawners, 0}}, false))
	assert.Empty(t, tm.Extract(nil, false))
	assert.Equal(t, 1, tm.Len())
	assert.Len(t, tm.Offgrid(), 1)
}

func TestVisibleTiles(t *testing.T) {
	tm := New(16)
	tm.Put(grass(0, 0))
	tm.Put(grass(1, 0))
	tm.Put(grass(-1, 0))
	tm.Put(grass(5, 0))
	tm.Put(grass(0, 3))

	visible := tm.VisibleTiles(0, 0, 32, 32)
	keys := make([]Key, 0, len(visible))
	for _, tile := range visible {
		keys = append(keys, tile.Pos)
	}
	// The right and bottom edges are inclusive of the partially shown cell.
	assert.Equal(t, []Key{{0, 0}, {1, 0}}, keys)

	visible = tm.VisibleTiles(-20, 0, 24, 16)
	require.Len(t, visible, 2)
	assert.Equal(t, Key{-1, 0}, visible[0].Pos)
	assert.Equal(t, Key{0, 0}, visible[1].Pos)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, -2, floorDiv(-20, 16))
	assert.Equal(t, -1, floorDiv(-16, 16))
	assert.Equal(t, -1, floorDiv(-4, 16))
	assert.Equal(t, 0, floorDiv(15, 16))
	assert.Equal(t, 2, floorDiv(32, 16))
}

func TestRectOverlapIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 16, H: 16}
	assert.True(t, a.Overlaps(Rect{X: 15, Y: 15, W: 16, H: 16}))
	assert.False(t, a.Overlaps(Rect{X: 16, Y: 0, W: 16, H: 16}), "touching on the right")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 16, W: 16, H: 16}), "touching below")
	assert.False(t, a.Overlaps(Rect{X: -16, Y: 0, W: 16, H: 16}), "touching on the left")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
