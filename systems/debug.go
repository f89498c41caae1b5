package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/automoto/tileworld/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var probeColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines the physics tiles the player is tested against this frame
// and prints its position, velocity and contact flags.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	body := components.Physics.Get(playerEntry)

	offX, offY := cameraOffset(ecs.World)
	for _, r := range level.Tilemap.PhysicsRectsAround(obj.X, obj.Y) {
		strokeRect(screen, r, float64(offX), float64(offY))
	}

	ebitenutil.DebugPrintAt(screen, debugText(obj.X, obj.Y, body), 2, 2)
}

func debugText(x, y float64, body *components.PhysicsData) string {
	c := body.Collisions
	return fmt.Sprintf("pos %.2f,%.2f vel %.2f,%.2f\nU%t D%t L%t R%t",
		x, y, body.Velocity.X, body.Velocity.Y, c.Up, c.Down, c.Left, c.Right)
}

func strokeRect(screen *ebiten.Image, r tilemap.Rect, offX, offY float64) {
	vector.StrokeRect(screen,
		float32(r.X-offX), float32(r.Y-offY),
		float32(r.W), float32(r.H),
		1, probeColor, false)
}
