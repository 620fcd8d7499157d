// internal/system/wave_test.go
package system

import (
	"testing"

	"go-grid-defense/internal/event"
	"go-grid-defense/internal/utils"
)

func newWaveFixture() (*testWorld, *WaveSystem, *event.Dispatcher) {
	w := newTestWorld()
	w.path = []utils.Vec{{X: 16, Y: 144}, {X: 400, Y: 144}}
	d := event.NewDispatcher()
	ws := NewWaveSystem(w, d, w.enemies, w.index, utils.NewPRNGService(1))
	return w, ws, d
}

func TestWaveSpawnsScriptedCount(t *testing.T) {
	w, ws, d := newWaveFixture()
	spawns := countEvents(d, event.EnemySpawned)

	ws.StartWave(1) // 5 runts, 0.8s apart
	for i := 0; i < 60*5; i++ {
		ws.Update(1.0 / 60.0)
	}

	if *spawns != 5 {
		t.Fatalf("spawn events = %d, want 5", *spawns)
	}
	if got := w.enemies.Pool.ActiveCount(); got != 5 {
		t.Fatalf("enemies = %d, want 5", got)
	}
	if !ws.InProgress() {
		t.Fatal("wave with live enemies should be in progress")
	}
}

func TestWaveSpawnJitterStaysNearEntry(t *testing.T) {
	w, ws, _ := newWaveFixture()

	ws.StartWave(1)
	for i := 0; i < 60*5; i++ {
		ws.Update(1.0 / 60.0)
	}

	for _, e := range w.Enemies() {
		if dx := e.X - 16; dx < -6 || dx > 6 {
			t.Errorf("enemy spawned at X=%v, outside jitter band around 16", e.X)
		}
		if dy := e.Y - 144; dy < -6 || dy > 6 {
			t.Errorf("enemy spawned at Y=%v, outside jitter band around 144", e.Y)
		}
	}
}

func TestWaveCompletesAndChainsAfterCooldown(t *testing.T) {
	w, ws, d := newWaveFixture()
	completed := countEvents(d, event.WaveCompleted)
	started := countEvents(d, event.WaveStarted)

	ws.StartWave(1)
	for i := 0; i < 60*5; i++ {
		ws.Update(1.0 / 60.0)
	}

	// Clear the field; the next update announces completion.
	for _, e := range w.Enemies() {
		w.RemoveEnemy(e.ID())
	}
	ws.Update(1.0 / 60.0)
	if *completed != 1 {
		t.Fatalf("completed events = %d, want 1", *completed)
	}
	if ws.InProgress() {
		t.Fatal("cleared wave still reports in progress")
	}

	// Cooldown runs down, then wave 2 arms itself.
	for i := 0; i < 60*5; i++ {
		ws.Update(1.0 / 60.0)
	}
	if ws.Wave() != 2 {
		t.Fatalf("wave = %d, want 2 after cooldown", ws.Wave())
	}
	if *started != 2 {
		t.Fatalf("started events = %d, want 2", *started)
	}
}

func TestWaveResetReturnsToIdle(t *testing.T) {
	_, ws, _ := newWaveFixture()

	ws.StartWave(3)
	ws.Update(1.0 / 60.0)
	ws.Reset()

	if ws.Wave() != 0 {
		t.Fatalf("wave = %d, want 0 after reset", ws.Wave())
	}
	// An idle system at wave 0 must not arm itself.
	for i := 0; i < 60*10; i++ {
		ws.Update(1.0 / 60.0)
	}
	if ws.Wave() != 0 {
		t.Fatalf("reset system restarted itself: wave = %d", ws.Wave())
	}
}

func TestWavePatternsScaleBeyondScript(t *testing.T) {
	w, ws, _ := newWaveFixture()

	ws.StartWave(12) // past the scripted table: last pattern with a larger count
	for i := 0; i < 60*10; i++ {
		ws.Update(1.0 / 60.0)
	}

	// Wave 10 is one boss; two waves past the script adds two per wave.
	if got := w.enemies.Pool.ActiveCount(); got != 5 {
		t.Fatalf("enemies = %d, want 5", got)
	}
	for _, e := range w.Enemies() {
		if e.DefID != "ENEMY_BOSS" {
			t.Fatalf("spawned %q, want ENEMY_BOSS", e.DefID)
		}
	}
}
