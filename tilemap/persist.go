package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/tileworld/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/features/math"
)

// LoadError reports a map file that could not be read or is not a valid map.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load tilemap %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var (
	errMissingTilemap = errors.New(`missing "tilemap" object`)
	errMissingOffgrid = errors.New(`missing "offgrid" array`)
)

// mapFile is the on-disk layout. Grid keys are "x;y" strings.
type mapFile struct {
	TileSize int                   `json:"tile_size"`
	Tilemap  map[string]tileRecord `json:"tilemap"`
	Offgrid  []offgridRecord       `json:"offgrid"`
}

type tileRecord struct {
	Type    string `json:"type"`
	Variant int    `json:"variant"`
	Pos     []int  `json:"pos"`
}

type offgridRecord struct {
	Type    string    `json:"type"`
	Variant int       `json:"variant"`
	Pos     []float64 `json:"pos"`
}

// Encode writes the map as JSON.
func (t *Tilemap) Encode(w io.Writer) error {
	f := mapFile{
		TileSize: t.tileSize,
		Tilemap:  make(map[string]tileRecord, len(t.grid)),
		Offgrid:  make([]offgridRecord, 0, len(t.offgrid)),
	}
	for k, tile := range t.grid {
		f.Tilemap[k.String()] = tileRecord{
			Type:    tile.Type.String(),
			Variant: tile.Variant,
			Pos:     []int{tile.Pos.X, tile.Pos.Y},
		}
	}
	for _, tile := range t.offgrid {
		f.Offgrid = append(f.Offgrid, offgridRecord{
			Type:    tile.Type.String(),
			Variant: tile.Variant,
			Pos:     []float64{tile.Pos.X, tile.Pos.Y},
		})
	}
	return json.NewEncoder(w).Encode(f)
}

// Decode replaces the contents of t with the map read from r. On error t is left
// unchanged.
func (t *Tilemap) Decode(r io.Reader) error {
	var f mapFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	decoded, err := f.toTilemap()
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}

func (f *mapFile) toTilemap() (*Tilemap, error) {
	if f.TileSize <= 0 {
		return nil, fmt.Errorf("tile_size must be positive, got %d", f.TileSize)
	}
	if f.Tilemap == nil {
		return nil, errMissingTilemap
	}
	if f.Offgrid == nil {
		return nil, errMissingOffgrid
	}

	t := New(f.TileSize)
	for rawKey, rec := range f.Tilemap {
		k, err := ParseKey(rawKey)
		if err != nil {
			return nil, err
		}
		typ, err := ParseTileType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", rawKey, err)
		}
		if len(rec.Pos) != 2 {
			return nil, fmt.Errorf("tile %s: pos must have 2 elements, got %d", rawKey, len(rec.Pos))
		}
		pos := Key{X: rec.Pos[0], Y: rec.Pos[1]}
		if pos != k {
			return nil, fmt.Errorf("tile %s: pos %s does not match its key", rawKey, pos)
		}
		t.grid[k] = Tile{Type: typ, Variant: rec.Variant, Pos: pos}
	}

	t.offgrid = make([]OffgridTile, 0, len(f.Offgrid))
	for i, rec := range f.Offgrid {
		typ, err := ParseTileType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("offgrid %d: %w", i, err)
		}
		if len(rec.Pos) != 2 {
			return nil, fmt.Errorf("offgrid %d: pos must have 2 elements, got %d", i, len(rec.Pos))
		}
		t.offgrid = append(t.offgrid, OffgridTile{
			Type:    typ,
			Variant: rec.Variant,
			Pos:     math.Vec2{X: rec.Pos[0], Y: rec.Pos[1]},
		})
	}
	return t, nil
}

// Save writes the map to path, replacing any existing file.
func (t *Tilemap) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save tilemap %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save tilemap %s: %w", path, cerr)
		}
	}()

	if err := t.Encode(f); err != nil {
		return fmt.Errorf("save tilemap %s: %w", path, err)
	}

	logger.For("tilemap").WithFields(logrus.Fields{
		"path":    path,
		"tiles":   len(t.grid),
		"offgrid": len(t.offgrid),
	}).Debug("saved tilemap")
	return nil
}

// Load replaces the contents of t with the map stored at path. Failures are
// returned as *LoadError and leave t unchanged.
func (t *Tilemap) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	if err := t.Decode(f); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	logger.For("tilemap").WithFields(logrus.Fields{
		"path":      path,
		"tile_size": t.tileSize,
		"tiles":     len(t.grid),
		"offgrid":   len(t.offgrid),
	}).Info("loaded tilemap")
	return nil
}

// ReadFile loads a new tilemap from path.
func ReadFile(path string) (*Tilemap, error) {
	t := New(0)
	if err := t.Load(path); err != nil {
		return nil, err
	}
	return t, nil
}
