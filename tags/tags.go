package tags

import (
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi"
)

var (
	Player  = donburi.NewTag().SetName("Player")
	Wall    = donburi.NewTag().SetName("Wall")
	Ramp    = donburi.NewTag().SetName("Ramp")
	Trigger = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = kinematics.TagSolid
	ResolvRamp     = kinematics.TagRamp
	ResolvTrigger  = kinematics.TagTrigger
	ResolvActor    = world.TagActor
	ResolvDeadZone = leveldata.TriggerDeadzone

	// Slope type tags
	Slope45UpRight = gamemath.Slope45UpRight
	Slope45UpLeft  = gamemath.Slope45UpLeft
)
