// internal/system/zone.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
)

// ZoneSystem expires storm zones and delivers their per-tick damage. Every
// enemy inside a zone takes the full damagePerSecond * dt slice; damage is
// not divided among occupants.
type ZoneSystem struct {
	ctx        interfaces.GameContext
	dispatcher *event.Dispatcher
	factory    *entity.ZoneFactory
}

func NewZoneSystem(ctx interfaces.GameContext, dispatcher *event.Dispatcher, factory *entity.ZoneFactory) *ZoneSystem {
	return &ZoneSystem{
		ctx:        ctx,
		dispatcher: dispatcher,
		factory:    factory,
	}
}

func (s *ZoneSystem) Update(dt float64) {
	now := s.ctx.Now()
	for _, z := range s.ctx.Zones() {
		if z.Update(now) {
			s.factory.Pool.Release(z)
			continue
		}

		slice := z.CalculateDamage(dt)
		for _, e := range s.ctx.EnemiesNear(z.X, z.Y, z.Radius) {
			if !z.ContainsPoint(e.X, e.Y) {
				continue
			}
			applyDamage(s.ctx, s.dispatcher, e.ID(), z.SourceID, slice, true)
		}
	}
}
