// internal/entity/tower.go
package entity

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// Tower occupies one grid cell and fires according to its kind. Towers are
// not pooled: the player places a bounded number and sells them explicitly.
type Tower struct {
	ID    types.EntityID
	DefID string
	Col   int
	Row   int
	X, Y  float64 // cell-center world position
	Level int

	// Level-evaluated stats, recomputed by RecalcStats.
	Damage       float64
	Range        float64
	FireInterval float64
	SplashRadius float64
	ChainCount   int
	ZoneRadius   float64
	ZoneDuration float64
	ZoneDPS      float64
	SlowFactor   float64
	SlowDuration float64

	LastFired float64
	TargetID  types.EntityID
	TargetPos utils.Vec

	// Cumulative bookkeeping for the HUD.
	Kills       int
	DamageDealt float64
	Invested    int // credits spent on placement and upgrades
}

// NewTower places a level-1 tower of the given definition on a cell.
func NewTower(id types.EntityID, def defs.TowerDefinition, col, row int) *Tower {
	t := &Tower{
		ID:    id,
		DefID: def.ID,
		Col:   col,
		Row:   row,
		X:     (float64(col) + 0.5) * config.CellSize,
		Y:     (float64(row) + 0.5) * config.CellSize,
		Level: 1,
		// A fresh tower may fire immediately.
		LastFired: math.Inf(-1),
		Invested:  def.Cost,
	}
	t.RecalcStats(def)
	return t
}

// RecalcStats evaluates the linear per-level coefficients at the current
// level. Fire-rate growth may be negative, so the interval is floored; the
// special stats never go below zero.
func (t *Tower) RecalcStats(def defs.TowerDefinition) {
	t.Damage = math.Max(0, def.Damage.At(t.Level))
	t.Range = math.Max(0, def.Range.At(t.Level))
	t.FireInterval = math.Max(config.MinFireInterval, def.FireInterval.At(t.Level))
	t.SplashRadius = math.Max(0, def.SplashRadius.At(t.Level))
	t.ChainCount = int(math.Max(0, math.Round(def.ChainCount.At(t.Level))))
	t.ZoneRadius = math.Max(0, def.ZoneRadius.At(t.Level))
	t.ZoneDuration = math.Max(0, def.ZoneDuration.At(t.Level))
	t.ZoneDPS = math.Max(0, def.ZoneDPS.At(t.Level))
	t.SlowFactor = utils.Clamp(def.SlowFactor.At(t.Level), 0, 1)
	t.SlowDuration = math.Max(0, def.SlowDuration.At(t.Level))
}

// CanFire reports whether the cooldown has elapsed at time now.
func (t *Tower) CanFire(now float64) bool {
	return now-t.LastFired >= t.FireInterval
}

// UpgradeCost is the credit price of the next level.
func UpgradeCost(def defs.TowerDefinition, level int) int {
	return def.Cost * level
}

// Upgrade raises the level and re-evaluates stats. Reports false at max
// level.
func (t *Tower) Upgrade(def defs.TowerDefinition) bool {
	if t.Level >= def.MaxLevel {
		return false
	}
	t.Invested += UpgradeCost(def, t.Level)
	t.Level++
	t.RecalcStats(def)
	return true
}
