// internal/system/selector.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/utils"
)

// TargetSelector picks a new target from the candidates in range. The
// stickiness rule (keep the current target while it stays valid) lives in
// CombatSystem; the selector only decides among fresh candidates.
type TargetSelector interface {
	Select(t *entity.Tower, candidates []*entity.Enemy) *entity.Enemy
}

// NearestSelector picks the candidate closest to the tower.
type NearestSelector struct{}

func (NearestSelector) Select(t *entity.Tower, candidates []*entity.Enemy) *entity.Enemy {
	var best *entity.Enemy
	bestDist := 0.0
	anchor := utils.Vec{X: t.X, Y: t.Y}
	for _, e := range candidates {
		d := anchor.DistSq(utils.Vec{X: e.X, Y: e.Y})
		if best == nil || d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// FurthestAlongSelector picks the candidate with the highest path cursor,
// breaking ties by distance to the tower. Useful against leaks: it always
// shoots the enemy closest to escaping.
type FurthestAlongSelector struct{}

func (FurthestAlongSelector) Select(t *entity.Tower, candidates []*entity.Enemy) *entity.Enemy {
	var best *entity.Enemy
	bestDist := 0.0
	anchor := utils.Vec{X: t.X, Y: t.Y}
	for _, e := range candidates {
		d := anchor.DistSq(utils.Vec{X: e.X, Y: e.Y})
		switch {
		case best == nil,
			e.PathIndex > best.PathIndex,
			e.PathIndex == best.PathIndex && d < bestDist:
			best = e
			bestDist = d
		}
	}
	return best
}

// WeakestSelector picks the candidate with the lowest remaining health,
// breaking ties by distance to the tower.
type WeakestSelector struct{}

func (WeakestSelector) Select(t *entity.Tower, candidates []*entity.Enemy) *entity.Enemy {
	var best *entity.Enemy
	bestDist := 0.0
	anchor := utils.Vec{X: t.X, Y: t.Y}
	for _, e := range candidates {
		d := anchor.DistSq(utils.Vec{X: e.X, Y: e.Y})
		switch {
		case best == nil,
			e.Health < best.Health,
			e.Health == best.Health && d < bestDist:
			best = e
			bestDist = d
		}
	}
	return best
}
