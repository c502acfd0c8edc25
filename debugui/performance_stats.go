package debugui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/loop"
)

// PerformanceStats keeps a ring of recent frame times and shows them next
// to the scheduler's per-system timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds one frame time in milliseconds.
func (ps *PerformanceStats) Record(frameMs float32) {
	ps.frameHistory[ps.frameIndex] = frameMs
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	if ps.recorded < ps.historyFrames {
		ps.recorded++
	}
}

// Samples returns the history oldest first.
func (ps *PerformanceStats) Samples() []float32 {
	samples := make([]float32, ps.historyFrames)
	copy(samples, ps.frameHistory[ps.frameIndex:])
	copy(samples[ps.historyFrames-ps.frameIndex:], ps.frameHistory[:ps.frameIndex])
	return samples
}

// Average is the mean over recorded frames only.
func (ps *PerformanceStats) Average() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(scheduler *loop.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 380), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	samples := ps.Samples()
	if implot.BeginPlotV("Frame Time", imgui.NewVec2(-1, 150), 0) {
		implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("frame", &samples[0], int32(len(samples)))
		implot.EndPlot()
	}

	imgui.Separator()

	stats := scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		systems := stats.Systems
		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			SortSystems(systems, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
		}

		for _, sys := range systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
		}
		imgui.EndTable()
	}

	imgui.End()
}

// SortSystems orders stats by a table column: 0 name, 1 average, 2 min,
// 3 max. Unknown columns leave the order unchanged.
func SortSystems(systems []loop.SystemStats, column int, descending bool) {
	var compare func(a, b loop.SystemStats) int
	switch column {
	case 0:
		compare = func(a, b loop.SystemStats) int { return cmp.Compare(a.Name, b.Name) }
	case 1:
		compare = func(a, b loop.SystemStats) int { return cmp.Compare(a.AvgDuration, b.AvgDuration) }
	case 2:
		compare = func(a, b loop.SystemStats) int { return cmp.Compare(a.MinDuration, b.MinDuration) }
	case 3:
		compare = func(a, b loop.SystemStats) int { return cmp.Compare(a.MaxDuration, b.MaxDuration) }
	default:
		return
	}

	slices.SortStableFunc(systems, func(a, b loop.SystemStats) int {
		if descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}
