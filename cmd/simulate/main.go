// Command simulate runs a level headless with scripted input and logs the
// actor's state.
package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/slopedash/assets/levels"
	"github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/shared/controller"
	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/automoto/slopedash/world"
)

func main() {
	levelName := flag.String("level", "", "Level to simulate (default: first level)")
	levelDir := flag.String("dir", "", "Directory of .tmx levels to load instead of the bundled ones")
	frames := flag.Int("frames", 0, "Frames to run (default: length of the script)")
	script := flag.String("script", "right:60,jump,right:30,dash,idle:60", "Comma separated input script")
	logEvery := flag.Int("log-every", 10, "Log the actor state every N frames (0 logs events only)")
	tuningPath := flag.String("tuning", "", "YAML file overriding physics and player tuning")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	steps, err := parseScript(*script)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}
	total := *frames
	if total <= 0 {
		total = frameCount(steps)
	}

	var fsys fs.FS = levels.FS
	dir := levels.Dir
	if *levelDir != "" {
		fsys, dir = os.DirFS(*levelDir), "."
	}
	data, err := leveldata.LoadLevel(fsys, dir, *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	level := world.NewLevel(data)
	spawn, ok := level.Spawn(0)
	if !ok {
		log.Fatalf("no player spawn points defined in map")
	}

	sim := world.NewSimulation(level, config.Physics.Gravity, config.Physics.FixedStep, config.Physics.MaxSubSteps)
	input := &controller.ScriptedInput{}
	actor := level.SpawnActor(spawn, config.PlayerSize(), config.KinematicsConfig())
	player := sim.AddPlayer(actor, controller.New(config.CharacterConfig(), input, config.Physics.Gravity))

	run(sim, player, input, steps, total, *logEvery)
}

func run(sim *world.Simulation, player *world.Player, input *controller.ScriptedInput, steps []step, total, logEvery int) {
	frameDt := 1 / float64(config.C.TPS)
	cursor := scriptCursor{steps: steps}

	for frame := 0; frame < total; frame++ {
		cursor.next(input)
		sim.Frame(frameDt)

		for _, p := range sim.ApplyDeadzones() {
			if p == player {
				log.Printf("frame %4d: respawned", frame)
			}
		}

		if ev := player.Events; ev != 0 {
			logEvents(frame, ev)
		}
		if logEvery > 0 && frame%logEvery == 0 {
			logState(frame, player)
		}
	}
	logState(total, player)
}

// scriptCursor walks the steps one frame at a time. Past the end the
// stick is released and no buttons are pressed.
type scriptCursor struct {
	steps []step
	index int
	frame int
}

func (c *scriptCursor) next(input *controller.ScriptedInput) {
	if c.index >= len(c.steps) {
		input.State.Horizontal = 0
		input.ClearEdges()
		return
	}

	s := c.steps[c.index]
	s.apply(input, c.frame)
	c.frame++
	if c.frame >= s.frames {
		c.index++
		c.frame = 0
	}
}

func logEvents(frame int, ev controller.Events) {
	names := []struct {
		event controller.Events
		name  string
	}{
		{controller.EventJumped, "jumped"},
		{controller.EventJumpCancelled, "jump cancelled"},
		{controller.EventDashStarted, "dash started"},
		{controller.EventDashEnded, "dash ended"},
		{controller.EventFlipped, "flipped"},
	}
	for _, n := range names {
		if ev.Has(n.event) {
			log.Printf("frame %4d: %s", frame, n.name)
		}
	}
}

func logState(frame int, p *world.Player) {
	b := p.Actor.Body
	log.Printf("frame %4d: pos=(%.3f, %.3f) vel=(%.3f, %.3f) grounded=%v normal=(%.2f, %.2f) dash=%s",
		frame, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y,
		b.Grounded, b.GroundNormal.X, b.GroundNormal.Y, p.Character.DashState())
}
