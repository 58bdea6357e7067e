// Package server runs the simulation headless and streams actor snapshots
// to websocket clients.
package server

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/messages"
	"github.com/automoto/slopedash/shared/netcomponents"
	"github.com/automoto/slopedash/world"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server manages the simulation and client connections
type Server struct {
	world     donburi.World
	sim       *world.Simulation
	loop      *GameLoop
	transport *transports.WsServerTransport

	// Remote players keyed by their network client
	players   map[any]*remotePlayer
	nextSpawn int
	mu        sync.Mutex
}

type remotePlayer struct {
	entity donburi.Entity
	player *world.Player
	input  *RemoteInput
}

// NewServer creates a server simulating level at tickRate frames per second.
func NewServer(level *world.Level, tickRate int) *Server {
	ecsWorld := donburi.NewWorld()

	s := &Server{
		world:   ecsWorld,
		sim:     world.NewSimulation(level, cfg.Physics.Gravity, cfg.Physics.FixedStep, cfg.Physics.MaxSubSteps),
		players: make(map[any]*remotePlayer),
	}
	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(ecsWorld)

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()

	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
		if err := s.join(client); err != nil {
			log.Printf("Failed to spawn player for client %s: %v", client.Id(), err)
		}
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("Client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("Client %s disconnected", client.Id())
		}
		s.leave(client)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.applyInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

// join spawns a character for key on the next spawn point and marks its
// snapshot components for network sync.
func (s *Server) join(key any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	spawns := s.sim.Level.Data.SpawnPoints
	if len(spawns) == 0 {
		return fmt.Errorf("no player spawn points defined in map")
	}
	spawn := spawns[s.nextSpawn%len(spawns)]
	s.nextSpawn++

	input := &RemoteInput{}
	actor := s.sim.Level.SpawnActor(spawn, cfg.PlayerSize(), cfg.KinematicsConfig())
	character := controller.New(cfg.CharacterConfig(), input, cfg.Physics.Gravity)
	player := s.sim.AddPlayer(actor, character)

	entity := s.world.Create(netcomponents.NetBody, netcomponents.NetCharacter)
	s.writeSnapshot(s.world.Entry(entity), player)

	// Mark entity for network sync with interpolation for the body
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetBody),
		netcomponents.NetCharacter,
	)
	if err != nil {
		s.sim.RemovePlayer(player)
		s.world.Remove(entity)
		return fmt.Errorf("network sync: %w", err)
	}

	s.players[key] = &remotePlayer{entity: entity, player: player, input: input}
	return nil
}

func (s *Server) leave(key any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rp, exists := s.players[key]
	if !exists {
		return
	}
	delete(s.players, key)

	s.sim.RemovePlayer(rp.player)
	if s.world.Valid(rp.entity) {
		s.world.Remove(rp.entity)
	}
}

func (s *Server) applyInput(key any, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rp, exists := s.players[key]; exists {
		rp.input.Apply(input)
	}
}

// Step runs one frame: the decision step with the latched inputs, the
// fixed physics ticks, deadzone respawns and the snapshot copy.
func (s *Server) Step(frameDt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.Decide(frameDt)
	for _, rp := range s.players {
		rp.input.Consume()
	}
	s.sim.Advance(frameDt)

	for _, p := range s.sim.ApplyDeadzones() {
		log.Printf("Player respawned at (%.1f, %.1f)", p.Actor.Spawn.X, p.Actor.Spawn.Y)
	}

	for _, rp := range s.players {
		if s.world.Valid(rp.entity) {
			s.writeSnapshot(s.world.Entry(rp.entity), rp.player)
		}
	}
}

func (s *Server) writeSnapshot(entry *donburi.Entry, p *world.Player) {
	netcomponents.NetBody.SetValue(entry, netcomponents.BodyFromState(p.Actor.Body.State()))
	netcomponents.NetCharacter.SetValue(entry, netcomponents.CharacterFromSnapshot(p.Character.Snapshot(), uint64(s.sim.Ticks())))
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}
