package systems

import (
	"github.com/automoto/slopedash/components"
	"github.com/automoto/slopedash/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetSnapshots copies each player's body and character state into
// its NetBody and NetCharacter components, the view the HUD draws from.
func UpdateNetSnapshots(e *ecs.ECS) {
	sim := getSimulation(e)
	if sim == nil {
		return
	}
	tick := uint64(sim.Ticks())

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetBody) || !entry.HasComponent(netcomponents.NetCharacter) {
			return
		}
		player := components.Player.Get(entry)
		netcomponents.NetBody.SetValue(entry, netcomponents.BodyFromState(player.Actor.Body.State()))
		netcomponents.NetCharacter.SetValue(entry, netcomponents.CharacterFromSnapshot(player.Character.Snapshot(), tick))
	})
}
