package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	InputRate float64
	FrameStep time.Duration

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Games          int
	Pieces         int
	Lines          int
	RowClears      int
	MaxRowsInPass  int
	BestScore      int
	BestLevel      int
	Shapes         []ShapeCount
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ShapeCount struct {
	Kind  string
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) observeScore(score, level int) {
	if score > r.BestScore {
		r.BestScore = score
	}
	if level > r.BestLevel {
		r.BestLevel = level
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Input Rate:** {{printf "%.2f" .InputRate}}
- **Frame Step:** {{.FrameStep}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Frame Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Gameplay
- **Games Over:** {{.Games}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}} in {{.RowClears}} passes (most in one pass: {{.MaxRowsInPass}})
- **Best Score:** {{.BestScore}} (level {{.BestLevel}})

## Shapes Locked
{{range .Shapes}}- {{.Kind}}: {{.Count}} ({{pct .Count $.Pieces}})
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"pct": func(part, total int) string {
			if total == 0 {
				return "-"
			}
			return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// Summary prints a one-line colored verdict. A frame slower than 16ms
// would drop a frame at 60 Hz.
func (r *Report) Summary(w io.Writer) {
	fps := 0.0
	if r.UpdateTime.Avg > 0 {
		fps = float64(time.Second) / float64(r.UpdateTime.Avg)
	}

	verdict, label := "OK ", color.New(color.FgGreen, color.Bold)
	if r.UpdateTime.Max > 16*time.Millisecond {
		verdict, label = "SLOW ", color.New(color.FgYellow, color.Bold)
	}
	label.Fprint(w, verdict)
	fmt.Fprintf(w, "%d frames, %d games, %d lines, best score ", r.TotalFrames, r.Games, r.Lines)
	color.New(color.FgCyan).Fprintf(w, "%d", r.BestScore)
	fmt.Fprintf(w, ", %.0f frames/s headroom\n", fps)
}
