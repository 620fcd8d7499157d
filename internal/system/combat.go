// internal/system/combat.go
package system

import (
	"log"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/utils"
)

// CombatSystem runs tower targeting and firing. Per tick, each tower keeps
// its current target while it is alive and in range; otherwise it asks the
// selector for a new one among the enemies the spatial index reports in
// range. Firing is gated on the tower's cooldown and dispatches per-kind:
// projectile launch, slow pulse, chain lightning, or storm-zone spawn.
type CombatSystem struct {
	ctx        interfaces.GameContext
	dispatcher *event.Dispatcher
	selector   TargetSelector
}

func NewCombatSystem(ctx interfaces.GameContext, dispatcher *event.Dispatcher, selector TargetSelector) *CombatSystem {
	if selector == nil {
		selector = NearestSelector{}
	}
	return &CombatSystem{
		ctx:        ctx,
		dispatcher: dispatcher,
		selector:   selector,
	}
}

func (s *CombatSystem) Update(dt float64) {
	now := s.ctx.Now()
	for _, t := range s.ctx.Towers() {
		def, ok := defs.TowerLibrary[t.DefID]
		if !ok {
			log.Printf("combat: no tower definition %q", t.DefID)
			continue
		}

		target := s.resolveTarget(t)
		if target == nil {
			t.TargetID = ""
			continue
		}
		t.TargetID = target.ID()
		t.TargetPos = utils.Vec{X: target.X, Y: target.Y}

		if !t.CanFire(now) {
			continue
		}
		t.LastFired = now

		switch def.Kind {
		case defs.AttackProjectile:
			s.ctx.SpawnProjectile(t, target)
			s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: t.ID})
		case defs.AttackSlow:
			s.firePulse(t, now)
		case defs.AttackChain:
			s.fireChain(t, def, target)
		case defs.AttackStorm:
			s.ctx.SpawnZone(target.X, target.Y, t.ZoneRadius, t.ZoneDuration, t.ZoneDPS, t.ID)
			s.dispatcher.Dispatch(event.Event{Type: event.PulseEffectRequest, Data: event.PulsePayload{
				X: target.X, Y: target.Y, Radius: t.ZoneRadius,
			}})
		default:
			log.Printf("combat: tower %q has unknown attack kind %q", t.ID, def.Kind)
		}
	}
}

// resolveTarget applies the stickiness rule before consulting the selector,
// so targets do not flicker between near-equidistant enemies.
func (s *CombatSystem) resolveTarget(t *entity.Tower) *entity.Enemy {
	anchor := utils.Vec{X: t.X, Y: t.Y}
	if t.TargetID != "" {
		if e, ok := s.ctx.Enemy(t.TargetID); ok {
			if anchor.Dist(utils.Vec{X: e.X, Y: e.Y}) <= t.Range {
				return e
			}
		}
	}
	candidates := s.ctx.EnemiesNearCell(t.Col, t.Row, t.Range)
	return s.selector.Select(t, candidates)
}

// firePulse slows every enemy currently in range.
func (s *CombatSystem) firePulse(t *entity.Tower, now float64) {
	for _, e := range s.ctx.EnemiesNearCell(t.Col, t.Row, t.Range) {
		s.ctx.SlowEnemy(e.ID(), t.SlowFactor, t.SlowDuration)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.PulseEffectRequest, Data: event.PulsePayload{
		X: t.X, Y: t.Y, Radius: t.Range,
	}})
}

// fireChain hits the target, then arcs to the nearest enemy within the chain
// radius of the last victim, never revisiting one, until the chain count is
// spent.
func (s *CombatSystem) fireChain(t *entity.Tower, def defs.TowerDefinition, target *entity.Enemy) {
	hit := map[string]bool{}
	current := target
	for i := 0; i < t.ChainCount && current != nil; i++ {
		hit[current.ID()] = true
		from := utils.Vec{X: current.X, Y: current.Y}
		applyDamage(s.ctx, s.dispatcher, current.ID(), t.ID, t.Damage, false)

		var next *entity.Enemy
		nextDist := 0.0
		for _, e := range s.ctx.EnemiesNear(from.X, from.Y, def.ChainRadius) {
			if hit[e.ID()] {
				continue
			}
			d := from.DistSq(utils.Vec{X: e.X, Y: e.Y})
			if next == nil || d < nextDist {
				next = e
				nextDist = d
			}
		}
		current = next
	}
}
