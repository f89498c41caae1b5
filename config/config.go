package config

import "image/color"

// Default is the only render layer; tiles and bodies share it and are ordered by
// renderer registration.
const Default = 0

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64 // added to Velocity.Y every frame
	TerminalVelocity float64 // upper bound for Velocity.Y

	// Collision
	ContactEpsilon float64 // tolerance for a resting body to count as flush with the floor
}

// TilemapConfig contains tilemap defaults
type TilemapConfig struct {
	SlotName string // gdata item used when no level path is given
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Speed     float64
	JumpSpeed float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Used when a level has no player spawner.
	DefaultSpawnX float64
	DefaultSpawnY float64

	Color color.RGBA
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowDivisor float64 // larger values ease more slowly toward the target
}

// DebugConfig contains debug options
type DebugConfig struct {
	DrawBodies bool
	Overlay    bool // toggled with F1
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Tilemap TilemapConfig
var Player PlayerConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  320,
		Height: 240,
		Scale:  2,
	}

	Physics = PhysicsConfig{
		Gravity:          0.1,
		TerminalVelocity: 5.0,
		ContactEpsilon:   1e-9,
	}

	Tilemap = TilemapConfig{
		SlotName: "map",
	}

	Player = PlayerConfig{
		Speed:           1.0,
		JumpSpeed:       3.0,
		CollisionWidth:  8,
		CollisionHeight: 15,
		DefaultSpawnX:   50,
		DefaultSpawnY:   50,
		Color:           color.RGBA{R: 255, G: 200, B: 60, A: 255},
	}

	Camera = CameraConfig{
		FollowDivisor: 30,
	}

	Debug = DebugConfig{
		DrawBodies: true,
	}
}
