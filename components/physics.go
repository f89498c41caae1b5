package components

import (
	"github.com/automoto/tileworld/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	physics.Body
	Movement math.Vec2 // per-frame intent written by input or AI
}

var Physics = donburi.NewComponentType[PhysicsData]()
