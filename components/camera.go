package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the pixel offset of the top-left corner of the viewport.
type CameraData struct {
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
