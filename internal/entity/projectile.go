// internal/entity/projectile.go
package entity

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// Projectile flies toward a target position refreshed each tick from the
// live target. Projectiles are pooled.
type Projectile struct {
	id string

	X, Y      float64
	SourceID  types.EntityID // tower that fired, for kill credit
	TargetID  types.EntityID
	TargetPos utils.Vec
	Speed     float64
	Damage    float64
	Piercing  bool
	Aoe       float64 // splash radius around the impact point; 0 = none

	Traveled  float64
	Hits      int
	SpawnTick uint64
}

func (p *Projectile) ID() string                   { return p.id }
func (p *Projectile) SetID(id string)              { p.id = id }
func (p *Projectile) Position() (float64, float64) { return p.X, p.Y }

// ResetProjectile restores pool defaults. Injected into the projectile pool.
func ResetProjectile(p *Projectile) {
	*p = Projectile{}
}

// Update advances the projectile toward its target position and reports
// arrival. The frame that would overshoot snaps exactly onto the target, so
// the projectile never oscillates around it.
func (p *Projectile) Update(dt float64) bool {
	pos := utils.Vec{X: p.X, Y: p.Y}
	dist := pos.Dist(p.TargetPos)
	step := p.Speed * dt

	if dist < config.ArrivalEpsilon || step >= dist {
		p.X, p.Y = p.TargetPos.X, p.TargetPos.Y
		p.Traveled += dist
		return true
	}

	dir := p.TargetPos.Sub(pos).Normalized()
	p.X += dir.X * step
	p.Y += dir.Y * step
	p.Traveled += step
	return false
}
