// internal/entity/enemy.go
package entity

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/utils"
)

// Enemy walks the path, takes damage and carries at most one slow. Enemies
// are pooled; Init re-arms a recycled instance from its definition.
type Enemy struct {
	id string

	DefID     string
	X, Y      float64
	Health    float64
	MaxHealth float64
	Speed     float64
	Armor     float64
	Reward    int
	PathIndex int

	// Slow status pair. "Longest remaining duration wins": a new slow only
	// replaces the current one if its end time is strictly later.
	SlowFactor  float64
	SlowEndTime float64
}

func (e *Enemy) ID() string                   { return e.id }
func (e *Enemy) SetID(id string)              { e.id = id }
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

// Init arms the enemy from its stat definition at the given spawn point.
func (e *Enemy) Init(def defs.EnemyDefinition, start utils.Vec) {
	e.DefID = def.ID
	e.X, e.Y = start.X, start.Y
	e.Health = def.Health
	e.MaxHealth = def.Health
	e.Speed = def.Speed
	e.Armor = def.Armor
	e.Reward = def.Reward
	e.PathIndex = 0
	e.SlowFactor = 0
	e.SlowEndTime = 0
}

// ResetEnemy restores pool defaults. Injected into the enemy pool.
func ResetEnemy(e *Enemy) {
	*e = Enemy{}
}

// Update advances the enemy toward its next waypoint and reports whether the
// end of the path has been reached. An empty path or an exhausted cursor
// counts as "reached end" immediately.
func (e *Enemy) Update(now, dt float64, path []utils.Vec) bool {
	if e.PathIndex >= len(path) {
		return true
	}
	target := path[e.PathIndex]
	pos := utils.Vec{X: e.X, Y: e.Y}
	dist := pos.Dist(target)

	if dist <= config.WaypointEpsilon {
		e.PathIndex++
		return e.PathIndex >= len(path)
	}

	move := e.EffectiveSpeed(now) * dt
	if move >= dist {
		// Clamp onto the waypoint rather than overshooting; the cursor
		// advances on the next update via the epsilon check.
		e.X, e.Y = target.X, target.Y
		return false
	}
	dir := target.Sub(pos).Normalized()
	e.X += dir.X * move
	e.Y += dir.Y * move
	return false
}

// TakeDamage applies armor-reduced damage and reports whether the enemy is
// now dead. Over-armored hits deal zero, never healing.
func (e *Enemy) TakeDamage(amount float64) bool {
	effective := amount - e.Armor
	if effective < 0 {
		effective = 0
	}
	e.Health -= effective
	return e.Health <= 0
}

// TakeRawDamage bypasses armor. Zone damage is delivered in dt-sized slices
// that flat armor would otherwise swallow whole.
func (e *Enemy) TakeRawDamage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}
	e.Health -= amount
	return e.Health <= 0
}

// ApplySlow installs a slow unless the current one outlasts it. Strictly
// later end times win regardless of multiplier strength; equal end times do
// not overwrite. Reports whether the slow was applied.
func (e *Enemy) ApplySlow(factor, endTime float64) bool {
	if endTime <= e.SlowEndTime {
		return false
	}
	e.SlowFactor = factor
	e.SlowEndTime = endTime
	return true
}

// IsSlowed reports whether the slow is live at time now. At the exact end
// time the enemy is no longer slowed.
func (e *Enemy) IsSlowed(now float64) bool {
	return now < e.SlowEndTime
}

// EffectiveSpeed is the base speed with any live slow applied.
func (e *Enemy) EffectiveSpeed(now float64) float64 {
	if e.IsSlowed(now) {
		return e.Speed * e.SlowFactor
	}
	return e.Speed
}
