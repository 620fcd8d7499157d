package entity

import (
	"testing"

	"go-grid-defense/internal/utils"
)

func TestEnemyFactorySpawnInitializesFromLibrary(t *testing.T) {
	f := NewEnemyFactory(4)

	e := f.Spawn("ENEMY_RUNT", utils.Vec{X: 16, Y: 48})
	if e == nil {
		t.Fatalf("spawn of known enemy type returned nil")
	}
	if e.ID() == "" {
		t.Errorf("spawned enemy has no id")
	}
	if e.Health != e.MaxHealth || e.Health <= 0 {
		t.Errorf("health not initialized: %v/%v", e.Health, e.MaxHealth)
	}
	if e.X != 16 || e.Y != 48 {
		t.Errorf("spawn position = (%v, %v), want (16, 48)", e.X, e.Y)
	}
}

func TestEnemyFactoryUnknownTypeIsNil(t *testing.T) {
	f := NewEnemyFactory(1)
	if e := f.Spawn("ENEMY_MISSING", utils.Vec{}); e != nil {
		t.Errorf("unknown enemy type spawned %v", e.ID())
	}
	if f.Pool.ActiveCount() != 0 {
		t.Errorf("failed spawn leaked a pool slot")
	}
}

func TestRecycledEnemyGetsFreshState(t *testing.T) {
	f := NewEnemyFactory(1)

	e := f.Spawn("ENEMY_RUNT", utils.Vec{})
	e.TakeDamage(10)
	e.ApplySlow(0.5, 99)
	e.PathIndex = 3
	firstID := e.ID()
	f.Pool.Release(e)

	e2 := f.Spawn("ENEMY_RUNT", utils.Vec{})
	if e2 != e {
		t.Fatalf("pool did not recycle the instance")
	}
	if e2.ID() == firstID {
		t.Errorf("recycled enemy kept its old id")
	}
	if e2.Health != e2.MaxHealth || e2.PathIndex != 0 || e2.SlowEndTime != 0 {
		t.Errorf("recycled enemy kept stale state: health %v, pathIndex %d, slowEnd %v",
			e2.Health, e2.PathIndex, e2.SlowEndTime)
	}
}
