// internal/system/projectile.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/utils"
)

// ProjectileSystem advances projectiles and resolves impacts. It owns the
// pierce policy: a piercing projectile keeps flying after a hit until it has
// spent config.PierceMaxHits or flown config.PierceMaxTravel, while a plain
// projectile retires on its first hit. Shots fired in the current tick are
// skipped so they never move in the tick that created them.
type ProjectileSystem struct {
	ctx        interfaces.GameContext
	dispatcher *event.Dispatcher
	factory    *entity.ProjectileFactory
}

func NewProjectileSystem(ctx interfaces.GameContext, dispatcher *event.Dispatcher, factory *entity.ProjectileFactory) *ProjectileSystem {
	return &ProjectileSystem{
		ctx:        ctx,
		dispatcher: dispatcher,
		factory:    factory,
	}
}

func (s *ProjectileSystem) Update(dt float64) {
	tick := s.ctx.Tick()
	for _, p := range s.ctx.Projectiles() {
		if p.SpawnTick == tick {
			continue
		}

		// Refresh the aim point from the live target. A despawned target
		// means a miss for plain shots; a piercing shot flies on to the last
		// known position.
		target, alive := s.ctx.Enemy(p.TargetID)
		if alive {
			p.TargetPos = utils.Vec{X: target.X, Y: target.Y}
		} else if !p.Piercing {
			s.factory.Pool.Release(p)
			continue
		}

		if !p.Update(dt) {
			if p.Piercing && p.Traveled > config.PierceMaxTravel {
				s.factory.Pool.Release(p)
			}
			continue
		}
		s.resolveImpact(p, alive)
	}
}

func (s *ProjectileSystem) resolveImpact(p *entity.Projectile, targetAlive bool) {
	impact := utils.Vec{X: p.X, Y: p.Y}
	p.Hits++

	if targetAlive {
		applyDamage(s.ctx, s.dispatcher, p.TargetID, p.SourceID, p.Damage, false)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: p.ID()})

	// Splash damages every other enemy around the impact point.
	if p.Aoe > 0 {
		for _, e := range s.ctx.EnemiesNear(impact.X, impact.Y, p.Aoe) {
			if e.ID() == p.TargetID {
				continue
			}
			applyDamage(s.ctx, s.dispatcher, e.ID(), p.SourceID, p.Damage, false)
		}
		s.dispatcher.Dispatch(event.Event{Type: event.ExplosionRequest, Data: event.ExplosionPayload{
			X: impact.X, Y: impact.Y, Radius: p.Aoe,
		}})
	}

	if p.Piercing && p.Hits < config.PierceMaxHits && p.Traveled < config.PierceMaxTravel {
		if next := s.nextPierceTarget(p, impact); next != nil {
			p.TargetID = next.ID()
			p.TargetPos = utils.Vec{X: next.X, Y: next.Y}
			return
		}
	}
	s.factory.Pool.Release(p)
}

// nextPierceTarget finds the nearest enemy around the impact point that is
// not the one just hit.
func (s *ProjectileSystem) nextPierceTarget(p *entity.Projectile, impact utils.Vec) *entity.Enemy {
	var next *entity.Enemy
	nextDist := 0.0
	for _, e := range s.ctx.EnemiesNear(impact.X, impact.Y, config.PierceRetarget) {
		if e.ID() == p.TargetID {
			continue
		}
		d := impact.DistSq(utils.Vec{X: e.X, Y: e.Y})
		if next == nil || d < nextDist {
			next = e
			nextDist = d
		}
	}
	return next
}
