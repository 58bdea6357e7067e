package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links a level entity to its object in the collision space.
type ObjectData struct {
	*resolv.Object
	SlopeType string // "", "45_up_right", "45_up_left"
}

var Object = donburi.NewComponentType[ObjectData]()
