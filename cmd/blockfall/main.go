package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	seed := cfg.Seed
	if !cfg.Seeded() {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting blockfall (seed %d, scale %d, debug ui %t, mute %t)", seed, cfg.Scale, cfg.DebugUI, cfg.Mute)

	game, err := engine.New(engine.WithSeed(seed))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	h, err := newHost(cfg, game)
	if err != nil {
		log.Fatalf("Failed to set up host: %v", err)
	}

	if err := ebiten.RunGame(h); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	log.Println("Bye.")
}
