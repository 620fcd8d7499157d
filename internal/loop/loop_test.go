package loop

import (
	"math"
	"testing"
	"time"

	"go-grid-defense/internal/config"
)

func newTestLoop(t *testing.T, tickRate float64, paused func() bool) (*Loop, *ManualClock, *int) {
	t.Helper()
	clock := NewManualClock(time.Unix(0, 0))
	count := new(int)
	l, err := New(Options{TickRate: tickRate}, clock, func(dt float64) { *count++ }, paused)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, clock, count
}

func TestFixedTimestepFromTickRate(t *testing.T) {
	l, _, _ := newTestLoop(t, 60, nil)
	if got, want := l.FixedTimestep(), 1000.0/60.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("FixedTimestep = %v, want %v", got, want)
	}
}

func TestNonPositiveStepRejected(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	for _, rate := range []float64{0, -10, math.Inf(1)} {
		if _, err := New(Options{TickRate: rate}, clock, func(float64) {}, nil); err == nil {
			t.Errorf("tick rate %v accepted, want configuration error", rate)
		}
	}
}

func TestFrameDrainsWholeSteps(t *testing.T) {
	l, clock, count := newTestLoop(t, 100, nil) // 10 ms step
	l.Start()
	l.Frame() // establishes the last-time marker

	clock.Advance(35 * time.Millisecond)
	if steps := l.Frame(); steps != 3 {
		t.Errorf("35 ms frame ran %d steps, want 3", steps)
	}
	clock.Advance(5 * time.Millisecond)
	if steps := l.Frame(); steps != 1 {
		t.Errorf("remainder 5 ms + 5 ms frame ran %d steps, want 1", steps)
	}
	if *count != 4 {
		t.Errorf("total updates = %d, want 4", *count)
	}
}

func TestSpiralOfDeathClamp(t *testing.T) {
	l, clock, count := newTestLoop(t, 60, nil)
	l.Start()
	l.Frame()

	clock.Advance(500 * time.Millisecond)
	l.Frame()

	max := int(math.Ceil(config.MaxFrameDelta / l.FixedTimestep()))
	if *count > max {
		t.Errorf("500 ms stall ran %d updates, want <= %d", *count, max)
	}
	if *count == 0 {
		t.Errorf("clamped frame ran no updates")
	}
}

func TestStartTwiceSingleSchedule(t *testing.T) {
	l, clock, count := newTestLoop(t, 100, nil)
	l.Start()
	l.Frame()
	l.Start() // must not reset or double the schedule

	clock.Advance(10 * time.Millisecond)
	if steps := l.Frame(); steps != 1 {
		t.Errorf("after double Start, frame ran %d steps, want 1", steps)
	}
	if *count != 1 {
		t.Errorf("updates = %d, want 1", *count)
	}
}

func TestStopIsIdempotentAndHaltsSteps(t *testing.T) {
	l, clock, count := newTestLoop(t, 100, nil)
	l.Start()
	l.Frame()
	l.Stop()
	l.Stop()

	clock.Advance(50 * time.Millisecond)
	if steps := l.Frame(); steps != 0 {
		t.Errorf("stopped loop ran %d steps", steps)
	}
	if *count != 0 {
		t.Errorf("stopped loop invoked update %d times", *count)
	}
}

func TestPauseConsumesNoStepsAndDropsBacklog(t *testing.T) {
	paused := false
	l, clock, count := newTestLoop(t, 100, func() bool { return paused })
	l.Start()
	l.Frame()

	paused = true
	clock.Advance(300 * time.Millisecond)
	if steps := l.Frame(); steps != 0 {
		t.Fatalf("paused frame ran %d steps", steps)
	}

	// Resume: only time elapsed after the unpause frame may step.
	paused = false
	clock.Advance(10 * time.Millisecond)
	if steps := l.Frame(); steps != 1 {
		t.Errorf("first unpaused frame ran %d steps, want 1 (no catch-up burst)", steps)
	}
	if *count != 1 {
		t.Errorf("updates = %d, want 1", *count)
	}
}

func TestResetZeroesAccumulator(t *testing.T) {
	l, clock, count := newTestLoop(t, 100, nil)
	l.Start()
	l.Frame()

	clock.Advance(9 * time.Millisecond) // just under one step
	l.Frame()
	l.Reset()

	clock.Advance(9 * time.Millisecond)
	if steps := l.Frame(); steps != 0 {
		t.Errorf("reset did not clear pending time; ran %d steps", steps)
	}
	// Reset also drops the last-time marker, so the 9 ms above was only a
	// re-measurement frame.
	clock.Advance(10 * time.Millisecond)
	l.Frame()
	if *count != 1 {
		t.Errorf("updates = %d, want 1", *count)
	}
}

func TestSpeedMultiplierScalesAccumulation(t *testing.T) {
	l, clock, count := newTestLoop(t, 100, nil)
	l.SetSpeed(2)
	l.Start()
	l.Frame()

	clock.Advance(10 * time.Millisecond)
	if steps := l.Frame(); steps != 2 {
		t.Errorf("2x speed over one step of real time ran %d steps, want 2", steps)
	}
	if *count != 2 {
		t.Errorf("updates = %d, want 2", *count)
	}
}

func TestUpdateReceivesFixedDtSeconds(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var got []float64
	l, err := New(Options{TickRate: 50}, clock, func(dt float64) { got = append(got, dt) }, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Start()
	l.Frame()
	clock.Advance(40 * time.Millisecond)
	l.Frame()

	if len(got) != 2 {
		t.Fatalf("updates = %d, want 2", len(got))
	}
	for _, dt := range got {
		if math.Abs(dt-0.02) > 1e-12 {
			t.Errorf("dt = %v, want fixed 0.02 s", dt)
		}
	}
}
