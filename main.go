package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/logger"
	"github.com/automoto/tileworld/scenes"
	"github.com/automoto/tileworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()
	logger.Init()
	log := logger.For("main")

	levelPath := flag.String("level", "", "level to play: a .json map or a .tmx Tiled map")
	slot := flag.String("slot", config.Tilemap.SlotName, "save slot to play when -level is not set")
	store := flag.Bool("store", false, "copy the -level map into -slot and exit")
	atlasDir := flag.String("atlas", "", "directory with <type>/<variant>.png tile images")
	flag.Parse()

	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("save slots are unavailable")
	}

	if *store {
		if *levelPath == "" {
			log.Fatal("-store needs -level")
		}
		tm, err := scenes.LoadLevel(*levelPath)
		if err != nil {
			log.WithError(err).Fatal("could not read level")
		}
		if err := systems.SaveLevelSlot(*slot, tm); err != nil {
			log.WithError(err).Fatal("could not store level")
		}
		log.WithField("slot", *slot).Info("level stored")
		return
	}

	source := *levelPath
	if source == "" {
		source = *slot
	}

	var atlas assets.Atlas
	if *atlasDir != "" {
		dirAtlas, err := assets.LoadDirAtlas(os.DirFS(*atlasDir), ".")
		if err != nil {
			log.WithError(err).Fatal("could not load tile images")
		}
		atlas = dirAtlas
	}

	scene, err := scenes.NewPlatformerScene(source, atlas)
	if err != nil {
		log.WithError(err).Fatal("could not start level")
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("tileworld")

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
