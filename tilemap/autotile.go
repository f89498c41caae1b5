package tilemap

// Direction is a cardinal neighbor bit. Y grows downward, so North is (0, -1).
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

var directionOffsets = [...]struct {
	dir    Direction
	dx, dy int
}{
	{East, 1, 0},
	{West, -1, 0},
	{North, 0, -1},
	{South, 0, 1},
}

// autotileRules maps the set of same-type cardinal neighbors to the sprite
// variant drawn for that configuration: edges, corners and the fully enclosed
// center. Sets not listed here keep their current variant.
var autotileRules = map[Direction]int{
	East | South:                0,
	East | South | West:         1,
	West | South:                2,
	West | North | South:        3,
	West | North:                4,
	West | North | East:         5,
	East | North:                6,
	East | North | South:        7,
	North | East | South | West: 8,
}

// AutotileVariant returns the variant for a neighbor mask and whether the mask
// has a rule.
func AutotileVariant(mask Direction) (int, bool) {
	v, ok := autotileRules[mask]
	return v, ok
}

// NeighborMask returns the directions in which a tile of the same type as the one
// at k is stored. An empty cell yields 0.
func (t *Tilemap) NeighborMask(k Key) Direction {
	tile, ok := t.grid[k]
	if !ok {
		return 0
	}
	var mask Direction
	for _, d := range directionOffsets {
		if n, ok := t.grid[k.Add(d.dx, d.dy)]; ok && n.Type == tile.Type {
			mask |= d.dir
		}
	}
	return mask
}

// Autotile sets the variant of every autotile-eligible grid tile from its
// same-type neighbors. Masks depend only on tile types, so the result does not
// depend on iteration order and a second pass changes nothing.
//
// Put and Remove never call this; editors run it after a batch of edits.
func (t *Tilemap) Autotile() {
	for k, tile := range t.grid {
		if !tile.Type.IsAutotileEligible() {
			continue
		}
		if v, ok := autotileRules[t.NeighborMask(k)]; ok {
			tile.Variant = v
			t.grid[k] = tile
		}
	}
}
