// Package loop drives an engine.Game from host frame callbacks. A Driver
// is either Inactive or Running; once started it ticks on every frame the
// host delivers and never stops on its own.
package loop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/plus3/blockfall/engine"
)

// State is the driver lifecycle state.
type State uint8

const (
	Inactive State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "inactive"
}

// Driver owns the game context and runs the per-frame systems: queued
// input, gravity, then rendering.
type Driver struct {
	game      *engine.Game
	scheduler *Scheduler
	clock     Clock
	input     *Queue

	state    State
	lastTime time.Duration
	primed   bool

	startRequested atomic.Bool
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithRenderer sets the renderer called at the end of every frame.
func WithRenderer(r Renderer) DriverOption {
	return func(d *Driver) {
		d.scheduler.Register(&RenderSystem{Renderer: r})
	}
}

// WithSystem registers an extra system after the built-in ones.
func WithSystem(system System) DriverOption {
	return func(d *Driver) {
		d.scheduler.Register(system)
	}
}

// NewDriver creates an inactive driver for game.
func NewDriver(game *engine.Game, opts ...DriverOption) *Driver {
	d := &Driver{
		game:      game,
		scheduler: NewScheduler(),
		input:     NewQueue(),
	}

	d.scheduler.Register(&InputSystem{})
	d.scheduler.Register(&GravitySystem{})

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Game() *engine.Game    { return d.game }
func (d *Driver) State() State          { return d.state }
func (d *Driver) Clock() Clock          { return d.clock }
func (d *Driver) Input() *Queue         { return d.input }
func (d *Driver) Scheduler() *Scheduler { return d.scheduler }

// Start moves the driver from Inactive to Running and notifies listeners
// with engine.EventStarted. Calling Start again has no effect.
func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	d.state = Running
	d.primed = false
	d.game.Notify(engine.Event{
		Type:  engine.EventStarted,
		Score: d.game.Score().Points(),
		Level: d.game.Score().Level(),
	})
}

// RequestStart asks the driver to Start at the beginning of the next frame.
// Unlike Start it is safe to call from any goroutine.
func (d *Driver) RequestStart() {
	d.startRequested.Store(true)
}

// Push queues a command for the next frame. It is safe to call from any
// goroutine.
func (d *Driver) Push(cmd engine.Command) {
	d.input.Push(cmd)
}

// Dispatch applies cmd immediately. Hosts that deliver input on the same
// goroutine as frames use this instead of Push.
func (d *Driver) Dispatch(cmd engine.Command) bool {
	return d.game.Apply(cmd)
}

// Frame is the per-frame callback. now is a monotonic timestamp supplied
// by the host. Frames delivered while Inactive are ignored. The first
// frame after Start has a delta of zero.
func (d *Driver) Frame(now time.Duration) {
	if d.startRequested.CompareAndSwap(true, false) {
		d.Start()
	}
	if d.state != Running {
		return
	}

	if !d.primed {
		d.lastTime = now
		d.primed = true
	}

	delta := float64(now-d.lastTime) / float64(time.Millisecond)
	d.lastTime = now

	d.clock.Frames++
	d.clock.Elapsed += delta

	d.scheduler.Once(newFrame(delta, d.game, &d.clock, d.input))
}

// Run calls Frame every interval until ctx is cancelled. Cancelling the
// context is how a host tears the loop down; the driver itself has no
// stop command.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.Frame(now.Sub(start))
		}
	}
}
