package world

import (
	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/leveldata"
)

// Player pairs a character's decision logic with the actor it drives.
type Player struct {
	Actor     *Actor
	Character *controller.Character

	// Events holds what the character did during the latest frame.
	Events controller.Events
}

// Respawn returns the player to its spawn point at rest. A dash in progress
// is cancelled and the air dash restored; the dash cooldown keeps running.
func (p *Player) Respawn() {
	p.Actor.Respawn()

	snap := p.Character.Snapshot()
	snap.Dashing = false
	snap.DashRemaining = 0
	snap.CanAirDash = true
	p.Character.Restore(snap)
}

// Simulation runs decision steps once per frame and physics ticks at a
// fixed rate.
type Simulation struct {
	Level       *Level
	Gravity     gamemath.Vec2
	FixedStep   float64
	MaxSubSteps int
	Players     []*Player

	accumulator float64
	ticks       int
}

// NewSimulation creates a simulation over level.
func NewSimulation(level *Level, gravity gamemath.Vec2, fixedStep float64, maxSubSteps int) *Simulation {
	if maxSubSteps < 1 {
		maxSubSteps = 1
	}
	return &Simulation{
		Level:       level,
		Gravity:     gravity,
		FixedStep:   fixedStep,
		MaxSubSteps: maxSubSteps,
	}
}

// AddPlayer registers character as the driver of actor.
func (s *Simulation) AddPlayer(actor *Actor, character *controller.Character) *Player {
	p := &Player{Actor: actor, Character: character}
	s.Players = append(s.Players, p)
	return p
}

// RemovePlayer drops p from the simulation and the collision space. Any
// dash in progress is discarded with it.
func (s *Simulation) RemovePlayer(p *Player) {
	for i, other := range s.Players {
		if other == p {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			p.Actor.Remove()
			return
		}
	}
}

// Frame runs one decision step for every player, then as many fixed
// physics ticks as the accumulated time allows. It returns the number of
// ticks run.
func (s *Simulation) Frame(frameDt float64) int {
	s.Decide(frameDt)
	return s.Advance(frameDt)
}

// Decide runs the decision step of every player's character.
func (s *Simulation) Decide(frameDt float64) {
	for _, p := range s.Players {
		p.Events = p.Character.Update(p.Actor.Body, frameDt)
	}
}

// Advance accumulates frameDt and runs the fixed physics ticks it pays
// for. Time beyond MaxSubSteps ticks is dropped.
func (s *Simulation) Advance(frameDt float64) int {
	if s.FixedStep <= 0 {
		return 0
	}

	s.accumulator += frameDt
	ticks := 0
	for s.accumulator >= s.FixedStep && ticks < s.MaxSubSteps {
		s.Tick()
		s.accumulator -= s.FixedStep
		ticks++
	}
	if ticks == s.MaxSubSteps && s.accumulator >= s.FixedStep {
		s.accumulator = 0
	}
	return ticks
}

// Tick runs a single physics step for every player.
func (s *Simulation) Tick() {
	for _, p := range s.Players {
		p.Actor.Step(s.Gravity, s.FixedStep)
	}
	s.ticks++
}

// Ticks returns the number of physics ticks run so far.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Time returns the simulated physics time.
func (s *Simulation) Time() float64 {
	return float64(s.ticks) * s.FixedStep
}

// ApplyDeadzones respawns every player overlapping a deadzone trigger and
// returns them.
func (s *Simulation) ApplyDeadzones() []*Player {
	var respawned []*Player
	for _, p := range s.Players {
		if p.Actor.InTrigger(leveldata.TriggerDeadzone) {
			p.Respawn()
			respawned = append(respawned, p)
		}
	}
	return respawned
}
