package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/slopedash/assets/levels"
	"github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/server"
	"github.com/automoto/slopedash/shared/leveldata"
	"github.com/automoto/slopedash/shared/protocol"
	"github.com/automoto/slopedash/world"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 60, "Server tick rate (frames per second)")
	levelName := flag.String("level", "", "Level to simulate (default: first level)")
	levelDir := flag.String("dir", "", "Directory of .tmx levels to load instead of the bundled ones")
	tuningPath := flag.String("tuning", "", "YAML file overriding physics and player tuning")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tickrate must be positive, got %d", *tickRate)
	}
	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
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

	srv := server.NewServer(world.NewLevel(data), *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		srv.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting slopedash server on port %d (tick rate: %d/s)", *port, *tickRate)
	if err := srv.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
