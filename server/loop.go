package server

import (
	"log"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps the server on a ticker and broadcasts snapshots after
// every step. Frames are timed with the wall clock so a late tick still
// advances the simulation by the time that actually passed.
type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) interval() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval())
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			g.tick(now.Sub(last))
			last = now
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick(elapsed time.Duration) {
	if elapsed > 4*g.interval() {
		log.Printf("Warning: Game loop fell behind by %v", elapsed-g.interval())
	}
	g.server.Step(elapsed.Seconds())

	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}
