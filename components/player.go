package components

import (
	"github.com/automoto/slopedash/world"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*world.Player
	Index int // spawn index the player was created on
}

var Player = donburi.NewComponentType[PlayerData]()
