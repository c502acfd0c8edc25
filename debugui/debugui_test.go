package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceStatsHistory(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Zero(t, ps.Average())

	ps.Record(10)
	ps.Record(20)
	assert.Equal(t, []float32{0, 0, 10, 20}, ps.Samples())
	assert.InDelta(t, 15, ps.Average(), 1e-6)

	ps.Record(30)
	ps.Record(40)
	ps.Record(50)
	assert.Equal(t, []float32{20, 30, 40, 50}, ps.Samples(), "oldest sample is overwritten")
	assert.InDelta(t, 35, ps.Average(), 1e-6)
}

func TestSortSystems(t *testing.T) {
	stats := func() []loop.SystemStats {
		return []loop.SystemStats{
			{Name: "RenderSystem", AvgDuration: 3 * time.Millisecond, MinDuration: time.Millisecond, MaxDuration: 9 * time.Millisecond},
			{Name: "GravitySystem", AvgDuration: time.Millisecond, MinDuration: 2 * time.Millisecond, MaxDuration: 4 * time.Millisecond},
			{Name: "InputSystem", AvgDuration: 2 * time.Millisecond, MinDuration: 3 * time.Millisecond, MaxDuration: 5 * time.Millisecond},
		}
	}
	names := func(systems []loop.SystemStats) []string {
		out := make([]string, len(systems))
		for i, s := range systems {
			out[i] = s.Name
		}
		return out
	}

	tests := []struct {
		name       string
		column     int
		descending bool
		want       []string
	}{
		{"by name", 0, false, []string{"GravitySystem", "InputSystem", "RenderSystem"}},
		{"by average descending", 1, true, []string{"RenderSystem", "InputSystem", "GravitySystem"}},
		{"by min", 2, false, []string{"RenderSystem", "GravitySystem", "InputSystem"}},
		{"by max descending", 3, true, []string{"RenderSystem", "InputSystem", "GravitySystem"}},
		{"unknown column", 7, false, []string{"RenderSystem", "GravitySystem", "InputSystem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			systems := stats()
			debugui.SortSystems(systems, tt.column, tt.descending)
			assert.Equal(t, tt.want, names(systems))
		})
	}
}

func TestBoardAnalysis(t *testing.T) {
	b, err := engine.NewBoard(4, 5)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 0}, debugui.ColumnHeights(b))
	assert.Zero(t, debugui.Holes(b))

	// ....
	// .#..
	// .#..
	// ....
	// ##.#
	b.Set(1, 1, engine.Filled)
	b.Set(1, 2, engine.Filled)
	b.Set(0, 4, engine.Filled)
	b.Set(1, 4, engine.Filled)
	b.Set(3, 4, engine.Filled)

	assert.Equal(t, []int{1, 4, 0, 1}, debugui.ColumnHeights(b))
	assert.Equal(t, 1, debugui.Holes(b))
}
