package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
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

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
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
	log.Printf("Starting blockfall-term (seed %d, tick %s)", seed, cfg.Tick)

	game, err := engine.New(engine.WithSeed(seed))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ui := newView(ctx, cfg, game.Snapshot())
	driver := loop.NewDriver(game, loop.WithRenderer(ui))
	ui.driver = driver
	game.Subscribe(ui)

	go driver.Run(ctx, cfg.Tick)
	go func() {
		<-ctx.Done()
		ui.app.Stop()
	}()

	if err := ui.app.Run(); err != nil {
		log.Fatalf("Terminal UI failed: %v", err)
	}
	cancel()
	log.Println("Bye.")
}
