package server

import (
	"testing"

	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/automoto/slopedash/shared/messages"
	"github.com/automoto/slopedash/shared/netcomponents"
	"github.com/automoto/slopedash/shared/protocol"
	"github.com/automoto/slopedash/world"
)

const frame = 1.0 / 60

func newTestServer(t *testing.T) *Server {
	t.Helper()
	if err := protocol.RegisterComponents(); err != nil {
		t.Fatalf("RegisterComponents: %v", err)
	}

	data := &leveldata.CollisionData{
		Width:       30,
		Height:      10,
		TileSize:    16,
		SpawnPoints: []leveldata.SpawnPoint{{X: 3, Y: 1}, {X: 10, Y: 1, Index: 1}},
	}
	for x := 0; x < 30; x++ {
		data.SolidRects = append(data.SolidRects, leveldata.SolidRect{X: float64(x), Y: 0, W: 1, H: 1})
	}
	return NewServer(world.NewLevel(data), 60)
}

func TestJoinAssignsSpawnsInTurn(t *testing.T) {
	s := newTestServer(t)

	if err := s.join("a"); err != nil {
		t.Fatalf("join a: %v", err)
	}
	if err := s.join("b"); err != nil {
		t.Fatalf("join b: %v", err)
	}

	if s.PlayerCount() != 2 {
		t.Fatalf("PlayerCount() = %d, want 2", s.PlayerCount())
	}
	if got := s.players["a"].player.Actor.Spawn.X; got != 3 {
		t.Errorf("first player spawn x = %v, want 3", got)
	}
	if got := s.players["b"].player.Actor.Spawn.X; got != 10 {
		t.Errorf("second player spawn x = %v, want 10", got)
	}
}

func TestStepMovesPlayerAndWritesSnapshot(t *testing.T) {
	s := newTestServer(t)
	if err := s.join("a"); err != nil {
		t.Fatalf("join: %v", err)
	}
	rp := s.players["a"]
	startX := rp.player.Actor.Body.Position.X

	s.applyInput("a", messages.PlayerInput{Sequence: 1, Horizontal: 1})
	for i := 0; i < 30; i++ {
		s.Step(frame)
	}

	body := netcomponents.NetBody.Get(s.world.Entry(rp.entity))
	if body.X <= startX {
		t.Errorf("synced x = %v, want > %v", body.X, startX)
	}
	if body.X != rp.player.Actor.Body.Position.X {
		t.Errorf("synced x = %v, body x = %v", body.X, rp.player.Actor.Body.Position.X)
	}
	if !body.Grounded {
		t.Errorf("player not grounded on the floor")
	}

	character := netcomponents.NetCharacter.Get(s.world.Entry(rp.entity))
	if character.Direction != 1 {
		t.Errorf("Direction = %d, want 1", character.Direction)
	}
	if character.Tick != 30 {
		t.Errorf("Tick = %d, want 30", character.Tick)
	}
}

func TestStepConsumesDashPress(t *testing.T) {
	s := newTestServer(t)
	if err := s.join("a"); err != nil {
		t.Fatalf("join: %v", err)
	}
	rp := s.players["a"]

	s.applyInput("a", messages.PlayerInput{Sequence: 1, DashDown: true})
	s.Step(frame)

	if !rp.player.Character.Snapshot().Dashing {
		t.Fatalf("dash not started")
	}
	if rp.input.DashButtonDown() {
		t.Errorf("dash press still latched after the step")
	}
}

func TestLeaveRemovesPlayer(t *testing.T) {
	s := newTestServer(t)
	if err := s.join("a"); err != nil {
		t.Fatalf("join: %v", err)
	}
	entity := s.players["a"].entity

	s.leave("a")
	s.leave("a")

	if s.PlayerCount() != 0 {
		t.Errorf("PlayerCount() = %d, want 0", s.PlayerCount())
	}
	if len(s.sim.Players) != 0 {
		t.Errorf("simulation still has %d players", len(s.sim.Players))
	}
	if s.world.Valid(entity) {
		t.Errorf("entity still valid after leave")
	}
}
