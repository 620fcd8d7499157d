// internal/system/selector_test.go
package system

import (
	"testing"

	"go-grid-defense/internal/entity"
)

func TestSelectorPolicies(t *testing.T) {
	w := newTestWorld()
	tower := w.addTower("TOWER_CANNON", 0, 0) // center (16,16)

	near := w.addEnemy("ENEMY_RUNT", 40, 16)
	far := w.addEnemy("ENEMY_RUNT", 120, 16)
	far.PathIndex = 3
	weak := w.addEnemy("ENEMY_RUNT", 80, 16)
	weak.Health = 5

	candidates := []*entity.Enemy{near, far, weak}

	tests := []struct {
		name     string
		selector TargetSelector
		want     *entity.Enemy
	}{
		{"nearest", NearestSelector{}, near},
		{"furthest along", FurthestAlongSelector{}, far},
		{"weakest", WeakestSelector{}, weak},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.selector.Select(tower, candidates); got != tc.want {
				t.Errorf("selected %v, want %v", got.ID(), tc.want.ID())
			}
		})
	}
}

func TestSelectorsReturnNilWithoutCandidates(t *testing.T) {
	w := newTestWorld()
	tower := w.addTower("TOWER_CANNON", 0, 0)

	for _, s := range []TargetSelector{NearestSelector{}, FurthestAlongSelector{}, WeakestSelector{}} {
		if got := s.Select(tower, nil); got != nil {
			t.Errorf("%T selected %v from an empty field", s, got.ID())
		}
	}
}
