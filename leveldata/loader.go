package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/tileworld/logger"
	"github.com/automoto/tileworld/tilemap"
	"github.com/lafriks/go-tiled"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/features/math"
)

// OffgridLayer is the object group whose objects become off-grid tiles.
const OffgridLayer = "offgrid"

// Tile and object properties read from the Tiled map.
const (
	propType    = "type"
	propVariant = "variant"
)

// LoadTMX parses a Tiled map into a tilemap. Every tile layer contributes grid
// tiles at their column and row; a tile's type and variant come from the
// "type" and "variant" properties of its tileset tile. Objects in the
// "offgrid" group become off-grid tiles at their pixel position.
//
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*tilemap.Tilemap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight || levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tm := tilemap.New(levelMap.TileWidth)

	for _, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[i]
				if tile.IsNil() {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: layer %q tile (%d,%d): %w", tmxPath, layer.Name, x, y, err)
				}
				typ, err := tilemap.ParseTileType(tilesetTile.Properties.GetString(propType))
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: layer %q tile (%d,%d): %w", tmxPath, layer.Name, x, y, err)
				}

				tm.Put(tilemap.Tile{
					Type:    typ,
					Variant: tilesetTile.Properties.GetInt(propVariant),
					Pos:     tilemap.Key{X: x, Y: y},
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != OffgridLayer {
			continue
		}
		for _, o := range og.Objects {
			typ, err := tilemap.ParseTileType(o.Properties.GetString(propType))
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
			}
			tm.AddOffgrid(tilemap.OffgridTile{
				Type:    typ,
				Variant: o.Properties.GetInt(propVariant),
				Pos:     math.Vec2{X: o.X, Y: o.Y},
			})
		}
	}

	logger.For("leveldata").WithFields(logrus.Fields{
		"path":      tmxPath,
		"tile_size": tm.TileSize(),
		"tiles":     tm.Len(),
		"offgrid":   len(tm.Offgrid()),
	}).Info("imported TMX level")

	return tm, nil
}

// LoadAllTMX discovers all .tmx files in levelsDir within fsys, imports each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllTMX(fsys fs.FS, levelsDir string) (map[string]*tilemap.Tilemap, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*tilemap.Tilemap, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		tm, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = tm
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
