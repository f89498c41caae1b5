package assets

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/tileworld/logger"
	"github.com/automoto/tileworld/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

// Atlas resolves a tile type and variant to the image drawn for it. A nil image
// means the tile is not drawn.
type Atlas interface {
	TileImage(t tilemap.TileType, variant int) *ebiten.Image
}

// DirAtlas holds one image per variant, loaded from <root>/<type>/<n>.png.
type DirAtlas struct {
	images map[tilemap.TileType][]*ebiten.Image
}

// LoadDirAtlas reads every tile type directory under root. Missing type
// directories are skipped; unreadable images are an error. Variants are the PNG
// files of a directory in numeric filename order.
func LoadDirAtlas(fsys fs.FS, root string) (*DirAtlas, error) {
	a := &DirAtlas{images: make(map[tilemap.TileType][]*ebiten.Image)}

	for _, t := range tilemap.TileTypes() {
		dir := path.Join(root, t.String())
		entries, err := fs.ReadDir(fsys, dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read atlas dir %s: %w", dir, err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() && strings.EqualFold(path.Ext(entry.Name()), ".png") {
				names = append(names, entry.Name())
			}
		}
		sortVariantNames(names)

		for _, name := range names {
			img, err := loadImage(fsys, path.Join(dir, name))
			if err != nil {
				return nil, err
			}
			a.images[t] = append(a.images[t], img)
		}
	}

	logger.For("assets").WithFields(logrus.Fields{
		"root":  root,
		"types": len(a.images),
	}).Info("loaded tile atlas")
	return a, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// sortVariantNames orders "2.png" before "10.png". Names without a numeric stem
// sort after numeric ones, alphabetically.
func sortVariantNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ni, erri := strconv.Atoi(strings.TrimSuffix(names[i], path.Ext(names[i])))
		nj, errj := strconv.Atoi(strings.TrimSuffix(names[j], path.Ext(names[j])))
		switch {
		case erri == nil && errj == nil:
			return ni < nj
		case erri == nil:
			return true
		case errj == nil:
			return false
		}
		return names[i] < names[j]
	})
}

func (a *DirAtlas) TileImage(t tilemap.TileType, variant int) *ebiten.Image {
	imgs := a.images[t]
	if variant < 0 || variant >= len(imgs) {
		return nil
	}
	return imgs[variant]
}

// Variants returns how many images were loaded for t.
func (a *DirAtlas) Variants(t tilemap.TileType) int {
	return len(a.images[t])
}

// PlaceholderAtlas draws every tile as a flat square tinted by type and variant.
// Images are created on first use.
type PlaceholderAtlas struct {
	size  int
	cache map[tilemap.Pair]*ebiten.Image
}

func NewPlaceholderAtlas(tileSize int) *PlaceholderAtlas {
	return &PlaceholderAtlas{
		size:  tileSize,
		cache: make(map[tilemap.Pair]*ebiten.Image),
	}
}

var placeholderColors = map[tilemap.TileType]color.RGBA{
	tilemap.Grass:      {R: 70, G: 160, B: 70, A: 255},
	tilemap.Stone:      {R: 120, G: 120, B: 130, A: 255},
	tilemap.Decor:      {R: 200, G: 120, B: 200, A: 160},
	tilemap.LargeDecor: {R: 150, G: 90, B: 50, A: 160},
	tilemap.Spawners:   {R: 240, G: 240, B: 80, A: 120},
}

func (a *PlaceholderAtlas) TileImage(t tilemap.TileType, variant int) *ebiten.Image {
	key := tilemap.Pair{Type: t, Variant: variant}
	if img, ok := a.cache[key]; ok {
		return img
	}
	img := ebiten.NewImage(a.size, a.size)
	img.Fill(PlaceholderColor(t, variant))
	a.cache[key] = img
	return img
}

// PlaceholderColor is the fill used by PlaceholderAtlas. Higher variants are
// slightly darker so autotiled edges stay readable.
func PlaceholderColor(t tilemap.TileType, variant int) color.RGBA {
	c, ok := placeholderColors[t]
	if !ok {
		c = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	shade := uint8((variant%9+9)%9) * 8
	return color.RGBA{R: sub(c.R, shade), G: sub(c.G, shade), B: sub(c.B, shade), A: c.A}
}

func sub(v, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}
