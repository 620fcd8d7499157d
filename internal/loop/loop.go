// internal/loop/loop.go
package loop

import (
	"fmt"

	"go-grid-defense/internal/config"
)

// Options configures the loop. TickRate is simulation steps per second; the
// fixed timestep is 1000/TickRate milliseconds.
type Options struct {
	TickRate float64
}

// Loop decouples the host's variable-rate frame callback from a constant
// simulation step. Each Frame call accumulates elapsed wall-clock time and
// drains it in whole-step increments, invoking the update callback once per
// step, so game logic always advances by the same dt regardless of display
// refresh rate.
//
// A single frame's elapsed time is clamped to config.MaxFrameDelta before
// accumulation, bounding catch-up work after a stall instead of simulating
// an unbounded backlog.
type Loop struct {
	step        float64 // ms
	accumulator float64 // ms
	clock       Clock
	update      func(dt float64) // dt in seconds
	paused      func() bool
	speed       float64

	running bool
	hasLast bool
	last    int64 // ns reading from the clock
}

// New builds a loop. A tick rate yielding a non-positive step size is a
// configuration defect, not a runtime condition, so it is rejected outright.
func New(opts Options, clock Clock, update func(dt float64), paused func() bool) (*Loop, error) {
	step := 1000.0 / opts.TickRate
	if !(step > 0) {
		return nil, fmt.Errorf("loop: tick rate %v yields non-positive step", opts.TickRate)
	}
	return &Loop{
		step:   step,
		clock:  clock,
		update: update,
		paused: paused,
		speed:  1.0,
	}, nil
}

// FixedTimestep returns the simulation step in milliseconds.
func (l *Loop) FixedTimestep() float64 { return l.step }

// Running reports whether Frame calls advance the simulation.
func (l *Loop) Running() bool { return l.running }

// Start arms the loop. Starting an already running loop is a no-op, so there
// is never more than one logical schedule outstanding.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.hasLast = false
}

// Stop disarms the loop. Idempotent.
func (l *Loop) Stop() {
	l.running = false
}

// Reset zeroes the accumulator and the last-time marker without stopping the
// loop, so the next frame starts a fresh measurement.
func (l *Loop) Reset() {
	l.accumulator = 0
	l.hasLast = false
}

// SetSpeed scales accumulated time (fast-forward). The step size itself
// never changes, so per-tick math stays identical at any speed.
func (l *Loop) SetSpeed(mult float64) {
	if mult > 0 {
		l.speed = mult
	}
}

// Frame is the host's periodic callback. It returns the number of simulation
// steps executed. While the pause predicate holds, no steps are consumed and
// accumulated time is dropped, so unpausing does not trigger a catch-up
// burst.
func (l *Loop) Frame() int {
	if !l.running {
		return 0
	}
	now := l.clock.Now().UnixNano()
	if !l.hasLast {
		l.last = now
		l.hasLast = true
		return 0
	}
	elapsed := float64(now-l.last) / 1e6 // ms
	l.last = now
	if elapsed > config.MaxFrameDelta {
		elapsed = config.MaxFrameDelta
	}
	if elapsed < 0 {
		elapsed = 0
	}

	if l.paused != nil && l.paused() {
		l.accumulator = 0
		return 0
	}

	l.accumulator += elapsed * l.speed
	steps := 0
	for l.accumulator >= l.step {
		l.update(l.step / 1000.0)
		l.accumulator -= l.step
		steps++
	}
	return steps
}
