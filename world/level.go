// Package world ties level data, the resolv collision space, kinematic bodies
// and characters together into a steppable simulation.
package world

import (
	"log"
	"math"

	"github.com/automoto/slopedash/collision"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/solarlune/resolv"
)

// TagActor marks resolv objects that mirror a kinematic body.
const TagActor = "actor"

// Level holds the collision space and spawn data for a loaded level.
type Level struct {
	Data  *leveldata.CollisionData
	Space *resolv.Space
	// Scale is the number of space units per world unit.
	Scale float64
}

// NewLevel builds a resolv.Space from parsed collision data. The space uses
// the level's pixel units with one cell per tile.
func NewLevel(data *leveldata.CollisionData) *Level {
	scale := data.TileSize
	if scale < 1 {
		scale = 1
	}
	cell := int(scale)
	space := resolv.NewSpace(
		int(math.Ceil(data.Width*scale)),
		int(math.Ceil(data.Height*scale)),
		cell, cell,
	)
	l := &Level{Data: data, Space: space, Scale: scale}

	for _, r := range data.SolidRects {
		tags := []string{kinematics.TagSolid}
		if r.IsRamp() {
			tags = []string{kinematics.TagRamp, r.SlopeType}
		}
		l.addObject(r.X, r.Y, r.W, r.H, tags...)
	}

	for _, tr := range data.Triggers {
		tags := []string{kinematics.TagTrigger}
		if tr.Kind != "" {
			tags = append(tags, tr.Kind)
		}
		obj := l.addObject(tr.X, tr.Y, tr.W, tr.H, tags...)
		obj.Data = tr
	}

	log.Printf("Loaded level: %d solid tiles, %d triggers, %d spawn points, %vx%v units",
		len(data.SolidRects), len(data.Triggers), len(data.SpawnPoints), data.Width, data.Height)

	return l
}

// addObject places a box given in world units into the space.
func (l *Level) addObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*l.Scale, y*l.Scale, w*l.Scale, h*l.Scale, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*l.Scale, h*l.Scale))
	l.Space.Add(obj)
	return obj
}

// Spawn returns the spawn point with the given index, falling back to the
// leftmost spawn. ok is false when the level has none.
func (l *Level) Spawn(index int) (leveldata.SpawnPoint, bool) {
	if len(l.Data.SpawnPoints) == 0 {
		return leveldata.SpawnPoint{}, false
	}
	for _, sp := range l.Data.SpawnPoints {
		if sp.Index == index {
			return sp, true
		}
	}
	return l.Data.SpawnPoints[0], true
}

// SpawnActor creates an actor of the given size standing on spawn.
func (l *Level) SpawnActor(spawn leveldata.SpawnPoint, size gamemath.Vec2, cfg kinematics.Config) *Actor {
	start := SpawnPosition(spawn, size)

	obj := l.addObject(start.X, start.Y, size.X, size.Y, TagActor)
	caster := collision.NewObjectCaster(l.Space, obj, l.Scale)
	body := kinematics.NewBody(caster, start, size, cfg)

	a := &Actor{
		Body:   body,
		Object: obj,
		Spawn:  spawn,
		level:  l,
		caster: caster,
	}
	obj.Data = a
	return a
}

// SpawnPosition returns the body position that centres a collider of size
// on the spawn point's feet.
func SpawnPosition(spawn leveldata.SpawnPoint, size gamemath.Vec2) gamemath.Vec2 {
	return gamemath.V(spawn.X-size.X/2, spawn.Y)
}
