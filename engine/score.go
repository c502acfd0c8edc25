package engine

import "time"

const (
	pointsPerRow   = 10
	pointsPerLevel = 100
	baseInterval   = 1000.0
)

// LevelFor returns the level reached with the given score.
func LevelFor(points int) int {
	return points/pointsPerLevel + 1
}

// IntervalFor returns the gravity interval in milliseconds for a level.
func IntervalFor(level int) float64 {
	return baseInterval / float64(level)
}

// Score holds the running score and the values derived from it. Level and
// drop interval are only ever recomputed from the points total.
type Score struct {
	points   int
	level    int
	interval float64

	lines  int
	pieces int
	games  int
}

// NewScore returns a zero score at level 1.
func NewScore() Score {
	s := Score{}
	s.recompute()
	return s
}

func (s *Score) recompute() {
	s.level = LevelFor(s.points)
	s.interval = IntervalFor(s.level)
}

// addRow credits the nth row cleared within a single pass. The nth row is
// worth n*10, so a pass of two rows adds 10+20.
func (s *Score) addRow(n int) {
	s.points += n * pointsPerRow
	s.lines++
	s.recompute()
}

// reset starts a new game. The game-over counter survives.
func (s *Score) reset() {
	s.points = 0
	s.lines = 0
	s.pieces = 0
	s.games++
	s.recompute()
}

func (s Score) Points() int { return s.points }
func (s Score) Level() int  { return s.level }

// DropInterval returns the gravity interval in milliseconds.
func (s Score) DropInterval() float64 { return s.interval }

func (s Score) DropIntervalDuration() time.Duration {
	return time.Duration(s.interval * float64(time.Millisecond))
}

// Lines returns the number of rows cleared in the current game.
func (s Score) Lines() int { return s.lines }

// Pieces returns the number of pieces locked in the current game.
func (s Score) Pieces() int { return s.pieces }

// GamesOver returns how many games have ended this session.
func (s Score) GamesOver() int { return s.games }
