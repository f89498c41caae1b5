package systems

import (
	"image/color"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/automoto/tileworld/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	enemyColor = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	bodyColor  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// cameraOffset returns the integer viewport offset, or zero without a camera.
func cameraOffset(w donburi.World) (int, int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return int(camera.Offset.X), int(camera.Offset.Y)
}

// DrawTilemap draws off-grid decorations first, then the grid tiles inside the
// viewport, using the atlas attached to the level.
func DrawTilemap(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Tilemap == nil || level.Atlas == nil {
		return
	}

	offX, offY := cameraOffset(ecs.World)
	tm := level.Tilemap

	tm.EachOffgrid(func(tile tilemap.OffgridTile) {
		drawTile(screen, level, tile.Type, tile.Variant, tile.Pos.X-float64(offX), tile.Pos.Y-float64(offY))
	})

	size := float64(tm.TileSize())
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, tile := range tm.VisibleTiles(offX, offY, width, height) {
		drawTile(screen, level, tile.Type, tile.Variant,
			float64(tile.Pos.X)*size-float64(offX),
			float64(tile.Pos.Y)*size-float64(offY))
	}
}

func drawTile(screen *ebiten.Image, level *components.LevelData, t tilemap.TileType, variant int, x, y float64) {
	img := level.Atlas.TileImage(t, variant)
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// DrawBodies draws every body's box. Bodies have no sprites in this core.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBodies {
		return
	}
	offX, offY := cameraOffset(ecs.World)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)

		c := color.Color(bodyColor)
		switch {
		case e.HasComponent(tags.Player):
			c = cfg.Player.Color
		case e.HasComponent(tags.Enemy):
			c = enemyColor
		}

		vector.FillRect(screen,
			float32(o.X-float64(offX)), float32(o.Y-float64(offY)),
			float32(o.W), float32(o.H),
			c, false)
	})
}
