package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the camera centre in level pixels, y-up.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	Snapped    bool    // Set once the camera has jumped onto its target
}

var Camera = donburi.NewComponentType[CameraData]()
