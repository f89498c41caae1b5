package scenes

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/leveldata"
	"github.com/automoto/tileworld/logger"
	"github.com/automoto/tileworld/systems"
	"github.com/automoto/tileworld/systems/factory"
	"github.com/automoto/tileworld/tags"
	"github.com/automoto/tileworld/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type PlatformerScene struct {
	ecs   *ecs.ECS
	spawn math.Vec2
}

// NewPlatformerScene loads the level named by source, sets up the world and
// places the player at the first player spawner. source is a .json map file, a
// .tmx Tiled map, or the name of a save slot.
func NewPlatformerScene(source string, atlas assets.Atlas) (*PlatformerScene, error) {
	tm, err := LoadLevel(source)
	if err != nil {
		return nil, err
	}
	if atlas == nil {
		atlas = assets.NewPlaceholderAtlas(tm.TileSize())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput) // Must run before UpdateBodies
	ecs.AddSystem(systems.UpdateBodies)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddRenderer(cfg.Default, systems.DrawTilemap)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	level := factory.CreateLevel(ecs, tm, atlas, source)
	levelData := components.Level.Get(level)

	ps := &PlatformerScene{
		ecs:   ecs,
		spawn: math.Vec2{X: cfg.Player.DefaultSpawnX, Y: cfg.Player.DefaultSpawnY},
	}
	if len(levelData.PlayerSpawns) > 0 {
		ps.spawn = levelData.PlayerSpawns[0].Pos
	} else {
		logger.For("scene").WithField("source", source).Warn("level has no player spawner, using default spawn")
	}

	player := factory.CreatePlayer(ecs, ps.spawn.X, ps.spawn.Y)
	for _, spawn := range levelData.EnemySpawns {
		factory.CreateEnemy(ecs, spawn.Pos.X, spawn.Pos.Y)
	}

	// Snap camera to the player to prevent panning from (0,0)
	obj := components.Object.Get(player)
	factory.CreateCamera(ecs, math.Vec2{
		X: obj.X + obj.W/2 - float64(cfg.C.Width)/2,
		Y: obj.Y + obj.H/2 - float64(cfg.C.Height)/2,
	})

	logger.For("scene").WithFields(logrus.Fields{
		"source":  source,
		"tiles":   tm.Len(),
		"enemies": len(levelData.EnemySpawns),
	}).Info("level ready")

	return ps, nil
}

func (ps *PlatformerScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ps.Respawn()
	}
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

// Respawn puts the player back on its spawn point at rest.
func (ps *PlatformerScene) Respawn() {
	player, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	obj.X, obj.Y = ps.spawn.X, ps.spawn.Y
	components.Physics.SetValue(player, components.PhysicsData{})
}

// LoadLevel reads a level from a .json map file, a .tmx Tiled map, or a save
// slot when source has neither extension.
func LoadLevel(source string) (*tilemap.Tilemap, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		return tilemap.ReadFile(source)
	case ".tmx":
		tm, err := leveldata.LoadTMX(os.DirFS(filepath.Dir(source)), filepath.Base(source))
		if err != nil {
			return nil, &tilemap.LoadError{Path: source, Err: err}
		}
		return tm, nil
	case "":
		return systems.LoadLevelSlot(source)
	default:
		return nil, fmt.Errorf("level %s: unsupported extension", source)
	}
}
