package tilemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yohamta/donburi/features/math"
)

// TileType identifies the art set a tile belongs to. The set is closed.
type TileType int

const (
	Grass TileType = iota
	Stone
	Decor
	LargeDecor
	Spawners

	tileTypeCount
)

var tileTypeNames = [tileTypeCount]string{
	Grass:      "grass",
	Stone:      "stone",
	Decor:      "decor",
	LargeDecor: "large_decor",
	Spawners:   "spawners",
}

// TileTypes lists every tile type in declaration order.
func TileTypes() []TileType {
	types := make([]TileType, 0, tileTypeCount)
	for t := TileType(0); t < tileTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t TileType) String() string {
	if t < 0 || t >= tileTypeCount {
		return "TileType(" + strconv.Itoa(int(t)) + ")"
	}
	return tileTypeNames[t]
}

// IsPhysics reports whether tiles of this type block bodies.
func (t TileType) IsPhysics() bool {
	switch t {
	case Grass, Stone:
		return true
	}
	return false
}

// IsAutotileEligible reports whether Autotile derives the variant of this type
// from its neighbors.
func (t TileType) IsAutotileEligible() bool {
	switch t {
	case Grass, Stone:
		return true
	}
	return false
}

// ParseTileType maps a tag such as "grass" to its TileType.
func ParseTileType(s string) (TileType, error) {
	for t, name := range tileTypeNames {
		if name == s {
			return TileType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown tile type %q", s)
}

func (t TileType) MarshalText() ([]byte, error) {
	if t < 0 || t >= tileTypeCount {
		return nil, fmt.Errorf("unknown tile type %d", int(t))
	}
	return []byte(tileTypeNames[t]), nil
}

func (t *TileType) UnmarshalText(text []byte) error {
	parsed, err := ParseTileType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Key is an integer grid coordinate.
type Key struct {
	X, Y int
}

// String renders the key as "x;y", the form used in saved maps.
func (k Key) String() string {
	return strconv.Itoa(k.X) + ";" + strconv.Itoa(k.Y)
}

// ParseKey parses the "x;y" form.
func ParseKey(s string) (Key, error) {
	xs, ys, ok := strings.Cut(s, ";")
	if !ok {
		return Key{}, fmt.Errorf("malformed key %q", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Key{}, fmt.Errorf("malformed key %q: %w", s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Key{}, fmt.Errorf("malformed key %q: %w", s, err)
	}
	return Key{X: x, Y: y}, nil
}

// Add returns the key shifted by (dx, dy).
func (k Key) Add(dx, dy int) Key {
	return Key{X: k.X + dx, Y: k.Y + dy}
}

// Tile is a grid-anchored tile. Pos is always equal to the key it is stored under.
type Tile struct {
	Type    TileType
	Variant int
	Pos     Key
}

// OffgridTile is a decorative tile placed in pixel space. It never collides and is
// never autotiled.
type OffgridTile struct {
	Type    TileType
	Variant int
	Pos     math.Vec2
}

// Pair selects tiles by type and variant, as used by Extract.
type Pair struct {
	Type    TileType
	Variant int
}

// Rect is a pixel-space axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Boxes that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}
