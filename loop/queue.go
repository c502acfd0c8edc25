package loop

import (
	"sync"

	"github.com/plus3/blockfall/engine"
)

// Queue buffers player commands raised by the host between frames. Hosts
// may push from any goroutine; the commands are applied in arrival order
// at the start of the next frame, each one running to completion before
// the next.
type Queue struct {
	mu       sync.Mutex
	commands []engine.Command
	spare    []engine.Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push queues cmd for the next frame.
func (q *Queue) Push(cmd engine.Command) {
	q.mu.Lock()
	q.commands = append(q.commands, cmd)
	q.mu.Unlock()
}

// Len returns the number of commands waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}

// Flush applies every queued command to game, resetting the buffer state.
// It returns the number of commands applied.
func (q *Queue) Flush(game *engine.Game) int {
	q.mu.Lock()
	pending := q.commands
	q.commands = q.spare[:0]
	q.mu.Unlock()

	for _, cmd := range pending {
		game.Apply(cmd)
	}

	q.mu.Lock()
	q.spare = pending[:0]
	q.mu.Unlock()

	return len(pending)
}
