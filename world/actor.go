package world

import (
	"github.com/automoto/slopedash/collision"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Actor is a kinematic body mirrored into the level's collision space.
type Actor struct {
	Body   *kinematics.Body
	Object *resolv.Object
	Spawn  leveldata.SpawnPoint

	level  *Level
	caster *collision.ObjectCaster
}

// Step advances the body one physics tick and syncs its resolv object.
func (a *Actor) Step(gravity gamemath.Vec2, dt float64) {
	a.Body.Step(gravity, dt)
	a.Sync()
}

// Sync copies the body's position into its resolv object.
func (a *Actor) Sync() {
	a.Object.X = a.Body.Position.X * a.level.Scale
	a.Object.Y = a.Body.Position.Y * a.level.Scale
	a.Object.Update()
}

// Triggers returns the trigger volumes the actor currently overlaps.
func (a *Actor) Triggers() []leveldata.TriggerRect {
	var found []leveldata.TriggerRect
	for _, obj := range a.caster.Overlapping(a.Body.Shape(), kinematics.TagTrigger) {
		if tr, ok := obj.Data.(leveldata.TriggerRect); ok {
			found = append(found, tr)
		}
	}
	return found
}

// InTrigger reports whether the actor overlaps a trigger of the given kind.
func (a *Actor) InTrigger(kind string) bool {
	for _, tr := range a.Triggers() {
		if tr.Kind == kind {
			return true
		}
	}
	return false
}

// Respawn puts the actor back on its spawn point at rest.
func (a *Actor) Respawn() {
	a.Body.Restore(kinematics.State{
		Position: SpawnPosition(a.Spawn, a.Body.Size),
	})
	a.Sync()
}

// Remove takes the actor out of the collision space.
func (a *Actor) Remove() {
	a.caster.Close()
	a.level.Space.Remove(a.Object)
}
