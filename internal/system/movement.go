// internal/system/movement.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/pkg/grid"
)

// MovementSystem advances every enemy along the path, keeps the spatial
// index in step with their positions, and reaps the ones that reach the end.
// Escapes are announced by event; the orchestrator owns the lives ledger.
type MovementSystem struct {
	ctx        interfaces.GameContext
	dispatcher *event.Dispatcher
	factory    *entity.EnemyFactory
	index      *grid.Index[*entity.Enemy]
}

func NewMovementSystem(ctx interfaces.GameContext, dispatcher *event.Dispatcher, factory *entity.EnemyFactory, index *grid.Index[*entity.Enemy]) *MovementSystem {
	return &MovementSystem{
		ctx:        ctx,
		dispatcher: dispatcher,
		factory:    factory,
		index:      index,
	}
}

func (s *MovementSystem) Update(dt float64) {
	now := s.ctx.Now()
	path := s.ctx.Path()
	for _, e := range s.ctx.Enemies() {
		if e.Update(now, dt, path) {
			id := e.ID()
			s.index.Remove(e)
			s.factory.Pool.Release(e)
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
			continue
		}
		s.index.Update(e)
	}
}
