package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/plus3/blockfall/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	inputRate := flag.Float64("input-rate", 0.3, "Probability of a random command on each frame.")
	frameStep := flag.Duration("frame", 16*time.Millisecond, "Simulated time between frames.")
	maxGames := flag.Int("games", 0, "Stop after this many games end (0 runs for the whole duration).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	noColor := flag.Bool("no-color", false, "Disable colored output.")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	if *inputRate < 0 || *inputRate > 1 {
		log.Fatalf("input-rate must be within [0, 1], got %g", *inputRate)
	}
	if *frameStep <= 0 {
		log.Fatalf("frame must be positive, got %s", *frameStep)
	}

	seed := cfg.Seed
	if !cfg.Seeded() {
		seed = uint64(time.Now().UnixNano())
	}

	log.Println("Starting blockfall stress test...")
	log.Printf("Running headless games for %s (seed %d)...\n", *duration, seed)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	bar := pb.StartNew(int(duration.Milliseconds()))
	opts := soakOptions{
		Seed:      seed,
		InputRate: *inputRate,
		FrameStep: *frameStep,
		MaxGames:  *maxGames,
		Progress: func(elapsed time.Duration) {
			bar.SetCurrent(elapsed.Milliseconds())
		},
	}

	var memStart runtime.MemStats
	runtime.ReadMemStats(&memStart)

	report, err := runSoak(ctx, opts)
	bar.SetCurrent(int64(bar.Total()))
	bar.Finish()
	if err != nil {
		log.Fatalf("Stress test failed: %v", err)
	}

	report.Duration = *duration
	report.GCPauseMetrics = *gcPauseMetrics
	report.MemStatsStart = memStart
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	report.Summary(os.Stdout)
	log.Println("Stress test complete.")
}
