package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Afterimage is a fading copy of the player left behind while dashing.
type Afterimage struct {
	X, Y        float64 // world units, bottom-left of the collider
	FacingRight bool
	Alpha       float32
	Fade        *gween.Tween
}

type DashTrailData struct {
	Images    []Afterimage
	SinceLast int // ticks since the last afterimage was dropped
}

var DashTrail = donburi.NewComponentType[DashTrailData]()
