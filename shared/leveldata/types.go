// Package leveldata parses TMX levels into collision data in world units.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
//
// World space is y-up with one unit per tile: a TMX pixel (px, py) maps to
// (px/TileWidth, MapHeight - py/TileHeight).
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	Triggers    []TriggerRect
	SpawnPoints []SpawnPoint

	// Width and Height are the map size in world units.
	Width, Height float64
	// TileSize is the tile width in pixels, the number of pixels per world unit.
	TileSize float64
}

// SolidRect represents a solid collision tile. X, Y is its bottom-left corner.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
}

// IsRamp reports whether the tile is a sloped ramp.
func (r SolidRect) IsRamp() bool {
	return r.SlopeType != ""
}

// TriggerRect is a non-solid volume. Kind comes from the object's class
// (or legacy type attribute), e.g. "deadzone".
type TriggerRect struct {
	X, Y, W, H float64
	Kind       string
	Name       string
}

// SpawnPoint represents an actor spawn location: the point the actor's feet
// are centred on.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
