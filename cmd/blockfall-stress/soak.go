package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

var commands = []engine.Command{
	engine.CommandMoveLeft,
	engine.CommandMoveRight,
	engine.CommandSoftDrop,
	engine.CommandRotate,
}

type soakOptions struct {
	Seed      uint64
	InputRate float64
	FrameStep time.Duration
	MaxFrames int64
	MaxGames  int
	Progress  func(elapsed time.Duration)
}

// soakListener tallies game events while the soak runs.
type soakListener struct {
	game      *engine.Game
	report    *Report
	histogram *intmap.Map[engine.Kind, int]
}

func (l *soakListener) OnEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventLocked:
		kind := l.game.Piece().Shape.Kind()
		count, _ := l.histogram.Get(kind)
		l.histogram.Put(kind, count+1)
		l.report.Pieces++
	case engine.EventRowsCleared:
		l.report.RowClears++
		l.report.Lines += ev.Rows
		if ev.Rows > l.report.MaxRowsInPass {
			l.report.MaxRowsInPass = ev.Rows
		}
	case engine.EventGameOver:
		l.report.Games++
		l.report.observeScore(ev.Score, ev.Level)
	}
}

// runSoak plays random input against a headless driver on a simulated
// clock until ctx is done or a frame or game limit is reached. The game
// logic only depends on the seed, so two runs with the same options and
// limits produce the same tallies.
func runSoak(ctx context.Context, opts soakOptions) (*Report, error) {
	game, err := engine.New(engine.WithSeed(opts.Seed))
	if err != nil {
		return nil, err
	}

	report := &Report{
		Seed:      opts.Seed,
		InputRate: opts.InputRate,
		FrameStep: opts.FrameStep,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	listener := &soakListener{
		game:      game,
		report:    report,
		histogram: intmap.New[engine.Kind, int](8),
	}
	game.Subscribe(listener)

	driver := loop.NewDriver(game)
	driver.Start()

	input := rand.New(rand.NewPCG(opts.Seed, ^opts.Seed))
	startTime := time.Now()
	var now time.Duration

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		if opts.MaxFrames > 0 && report.TotalFrames >= opts.MaxFrames {
			break
		}
		if opts.MaxGames > 0 && report.Games >= opts.MaxGames {
			break
		}

		if input.Float64() < opts.InputRate {
			driver.Push(commands[input.IntN(len(commands))])
		}

		updateStart := time.Now()
		driver.Frame(now)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

		now += opts.FrameStep
		report.TotalFrames++

		if opts.Progress != nil && report.TotalFrames%1024 == 0 {
			opts.Progress(time.Since(startTime))
		}
	}

	score := game.Score()
	report.observeScore(score.Points(), score.Level())
	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = now
	report.UpdateTime.Finalize()
	report.Systems = driver.Scheduler().GetStats().Systems
	report.Shapes = shapeCounts(listener.histogram)

	return report, nil
}

func shapeCounts(histogram *intmap.Map[engine.Kind, int]) []ShapeCount {
	counts := make([]ShapeCount, 0, histogram.Len())
	for _, shape := range engine.Catalog() {
		count, ok := histogram.Get(shape.Kind())
		if !ok {
			continue
		}
		counts = append(counts, ShapeCount{Kind: shape.Kind().String(), Count: count})
	}
	return counts
}
