package breakout

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// LoopState is the state of the frame loop.
type LoopState int

const (
	StateStopped LoopState = iota // Before Start, and after the game ends
	StateRunning
)

// String returns a human-readable name for the state.
func (s LoopState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Driver errors.
var (
	ErrAlreadyStarted = errors.New("breakout: already started")
	ErrFramesClosed   = errors.New("breakout: frame source closed")
)

// Observer is called after every tick with that tick's result.
type Observer func(w *World, res StepResult)

// Driver owns a World and its InputAdapter and runs them frame by frame.
// A Driver starts once; after a terminal outcome a new Driver is needed.
type Driver struct {
	world   *World
	input   *InputAdapter
	state   LoopState
	started bool
	outcome core.Outcome

	observers []Observer
}

// NewDriver creates a stopped driver for w. A nil input gets a fresh adapter.
func NewDriver(w *World, input *InputAdapter) *Driver {
	if input == nil {
		input = NewInputAdapter()
	}
	return &Driver{world: w, input: input}
}

// World returns the driven world.
func (d *Driver) World() *World { return d.world }

// Input returns the adapter host callbacks should feed.
func (d *Driver) Input() *InputAdapter { return d.input }

// Observe registers fn to run after each tick.
func (d *Driver) Observe(fn Observer) {
	d.observers = append(d.observers, fn)
}

// Start moves the driver from STOPPED to RUNNING. It succeeds once.
func (d *Driver) Start() error {
	if d.started {
		return ErrAlreadyStarted
	}
	d.started = true
	d.state = StateRunning
	return nil
}

// Running reports whether the host should schedule another frame.
func (d *Driver) Running() bool {
	return d.state == StateRunning
}

// State returns the loop state.
func (d *Driver) State() LoopState {
	return d.state
}

// Outcome returns the terminal outcome, or OutcomeNone while undecided.
func (d *Driver) Outcome() core.Outcome {
	return d.outcome
}

// GameState returns a summary for the host.
func (d *Driver) GameState() core.GameState {
	return core.GameState{
		Score:   d.world.score,
		Lives:   d.world.lives,
		Running: d.Running(),
		Outcome: d.outcome,
	}
}

// Tick applies queued input and steps the world once. It does nothing
// unless the driver is running. A terminal outcome stops the driver, so it
// is reported by exactly one Tick.
func (d *Driver) Tick() StepResult {
	if !d.Running() {
		return StepResult{}
	}

	d.input.Drain(d.world)
	res := Step(d.world)
	if res.Outcome != core.OutcomeNone {
		d.outcome = res.Outcome
		d.state = StateStopped
	}

	for _, fn := range d.observers {
		fn(d.world, res)
	}
	return res
}

// Run drives the loop headless: it starts the driver if needed, then
// waits for each frame signal, ticks, and calls present. It returns when
// the game ends, ctx is cancelled, or frames is closed.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time, present func(*World)) (core.Outcome, error) {
	if !d.started {
		if err := d.Start(); err != nil {
			return d.outcome, err
		}
	}

	for d.Running() {
		select {
		case <-ctx.Done():
			return d.outcome, ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return d.outcome, ErrFramesClosed
			}
		}

		d.Tick()
		if present != nil {
			present(d.world)
		}
	}

	return d.outcome, nil
}
