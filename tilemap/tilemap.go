package tilemap

import (
	stdmath "math"
	"sort"

	"github.com/yohamta/donburi/features/math"
)

// neighborOffsets covers the 3x3 block around a cell, center included.
var neighborOffsets = [9][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// Tilemap is a sparse grid of tiles keyed by cell plus a sequence of off-grid
// decorative tiles.
//
// Physics only reads from a Tilemap. Edits, Autotile and Load are expected to
// happen between frames; the type does no locking of its own.
type Tilemap struct {
	tileSize int
	grid     map[Key]Tile
	offgrid  []OffgridTile
}

// New returns an empty tilemap with the given cell edge length in pixels.
func New(tileSize int) *Tilemap {
	return &Tilemap{
		tileSize: tileSize,
		grid:     make(map[Key]Tile),
	}
}

func (t *Tilemap) TileSize() int {
	return t.tileSize
}

// Put stores tile at tile.Pos, replacing whatever occupied that cell.
func (t *Tilemap) Put(tile Tile) {
	t.grid[tile.Pos] = tile
}

// Remove deletes the tile at k. Removing an empty cell is a no-op.
func (t *Tilemap) Remove(k Key) {
	delete(t.grid, k)
}

// At returns the tile stored at k.
func (t *Tilemap) At(k Key) (Tile, bool) {
	tile, ok := t.grid[k]
	return tile, ok
}

// Len is the number of grid tiles.
func (t *Tilemap) Len() int {
	return len(t.grid)
}

// Tiles returns a copy of the grid.
func (t *Tilemap) Tiles() map[Key]Tile {
	tiles := make(map[Key]Tile, len(t.grid))
	for k, tile := range t.grid {
		tiles[k] = tile
	}
	return tiles
}

// AddOffgrid appends a decorative tile.
func (t *Tilemap) AddOffgrid(tile OffgridTile) {
	t.offgrid = append(t.offgrid, tile)
}

// Offgrid returns a copy of the off-grid tiles in insertion order.
func (t *Tilemap) Offgrid() []OffgridTile {
	return append([]OffgridTile(nil), t.offgrid...)
}

// EachOffgrid calls fn for every off-grid tile in insertion order.
func (t *Tilemap) EachOffgrid(fn func(OffgridTile)) {
	for _, tile := range t.offgrid {
		fn(tile)
	}
}

// CellAt returns the cell containing the pixel point (x, y).
func (t *Tilemap) CellAt(x, y float64) Key {
	size := float64(t.tileSize)
	return Key{
		X: int(stdmath.Floor(x / size)),
		Y: int(stdmath.Floor(y / size)),
	}
}

// TilesAround returns the tiles in the 3x3 block of cells centered on the cell
// containing (x, y). Empty cells are skipped.
func (t *Tilemap) TilesAround(x, y float64) []Tile {
	center := t.CellAt(x, y)
	tiles := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if tile, ok := t.grid[center.Add(off[0], off[1])]; ok {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// PhysicsRectsAround returns the pixel boxes of the physics tiles around (x, y).
func (t *Tilemap) PhysicsRectsAround(x, y float64) []Rect {
	var rects []Rect
	for _, tile := range t.TilesAround(x, y) {
		if tile.Type.IsPhysics() {
			rects = append(rects, t.cellRect(tile.Pos))
		}
	}
	return rects
}

// SolidAt returns the physics tile whose cell contains the pixel point (x, y).
func (t *Tilemap) SolidAt(x, y float64) (Tile, bool) {
	tile, ok := t.grid[t.CellAt(x, y)]
	if !ok || !tile.Type.IsPhysics() {
		return Tile{}, false
	}
	return tile, true
}

func (t *Tilemap) cellRect(k Key) Rect {
	size := float64(t.tileSize)
	return Rect{X: float64(k.X) * size, Y: float64(k.Y) * size, W: size, H: size}
}

// Extract collects every tile whose (type, variant) is listed in pairs. Off-grid
// matches come first in insertion order, then grid matches ordered by row and
// column with their position converted to pixels. Unless keep is set the matches
// are removed from the map.
func (t *Tilemap) Extract(pairs []Pair, keep bool) []OffgridTile {
	wanted := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		wanted[p] = struct{}{}
	}

	var matches []OffgridTile

	kept := t.offgrid[:0:0]
	for _, tile := range t.offgrid {
		if _, ok := wanted[Pair{Type: tile.Type, Variant: tile.Variant}]; ok {
			matches = append(matches, tile)
			if !keep {
				continue
			}
		}
		kept = append(kept, tile)
	}
	if !keep && len(kept) != len(t.offgrid) {
		t.offgrid = kept
	}

	var keys []Key
	for k, tile := range t.grid {
		if _, ok := wanted[Pair{Type: tile.Type, Variant: tile.Variant}]; ok {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)

	size := float64(t.tileSize)
	for _, k := range keys {
		tile := t.grid[k]
		matches = append(matches, OffgridTile{
			Type:    tile.Type,
			Variant: tile.Variant,
			Pos:     math.Vec2{X: float64(k.X) * size, Y: float64(k.Y) * size},
		})
		if !keep {
			delete(t.grid, k)
		}
	}

	return matches
}

// VisibleTiles returns the grid tiles inside a viewport whose top-left corner is
// at pixel (offsetX, offsetY). Columns are scanned left to right, each column top
// to bottom.
func (t *Tilemap) VisibleTiles(offsetX, offsetY, width, height int) []Tile {
	minX := floorDiv(offsetX, t.tileSize)
	maxX := floorDiv(offsetX+width, t.tileSize)
	minY := floorDiv(offsetY, t.tileSize)
	maxY := floorDiv(offsetY+height, t.tileSize)

	var tiles []Tile
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if tile, ok := t.grid[Key{X: x, Y: y}]; ok {
				tiles = append(tiles, tile)
			}
		}
	}
	return tiles
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
}
