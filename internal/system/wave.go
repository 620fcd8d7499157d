// internal/system/wave.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// WaveSystem spawns enemies according to the scripted wave patterns. When a
// wave's spawns are exhausted and the field is clear it announces completion
// and, after a cooldown, arms the next wave.
type WaveSystem struct {
	ctx        interfaces.GameContext
	dispatcher *event.Dispatcher
	factory    *entity.EnemyFactory
	index      *grid.Index[*entity.Enemy]
	rng        *utils.PRNGService

	wave       int
	def        defs.WaveDefinition
	active     bool
	spawned    int
	spawnTimer float64
	cooldown   float64
}

func NewWaveSystem(ctx interfaces.GameContext, dispatcher *event.Dispatcher, factory *entity.EnemyFactory, index *grid.Index[*entity.Enemy], rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ctx:        ctx,
		dispatcher: dispatcher,
		factory:    factory,
		index:      index,
		rng:        rng,
	}
}

// Wave returns the current wave number (0 before the first wave starts).
func (s *WaveSystem) Wave() int { return s.wave }

// InProgress reports whether a wave is still spawning or has enemies alive.
func (s *WaveSystem) InProgress() bool {
	return s.active || len(s.ctx.Enemies()) > 0
}

// Reset returns the system to the pre-first-wave state.
func (s *WaveSystem) Reset() {
	s.wave = 0
	s.def = defs.WaveDefinition{}
	s.active = false
	s.spawned = 0
	s.spawnTimer = 0
	s.cooldown = 0
}

// StartWave begins the numbered wave immediately.
func (s *WaveSystem) StartWave(n int) {
	s.wave = n
	s.def = defs.WaveFor(n)
	s.active = true
	s.spawned = 0
	s.spawnTimer = 0
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WavePayload{Number: n}})
}

func (s *WaveSystem) Update(dt float64) {
	if !s.active {
		// Between waves: run down the cooldown once the field is clear.
		if s.wave > 0 && len(s.ctx.Enemies()) == 0 {
			s.cooldown -= dt
			if s.cooldown <= 0 {
				s.StartWave(s.wave + 1)
			}
		}
		return
	}

	s.spawnTimer -= dt
	for s.spawnTimer <= 0 && s.spawned < s.def.Count {
		s.spawn()
		s.spawned++
		s.spawnTimer += s.def.SpawnInterval
	}

	if s.spawned >= s.def.Count && len(s.ctx.Enemies()) == 0 {
		s.active = false
		s.cooldown = config.WaveCooldown
		s.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WavePayload{Number: s.wave}})
	}
}

func (s *WaveSystem) spawn() {
	path := s.ctx.Path()
	if len(path) == 0 {
		return
	}
	start := path[0]
	// Lateral jitter keeps a tight spawn burst from rendering as one enemy.
	start.X += s.rng.Range(-config.SpawnJitter, config.SpawnJitter)
	start.Y += s.rng.Range(-config.SpawnJitter, config.SpawnJitter)

	e := s.factory.Spawn(s.def.EnemyID, start)
	if e == nil {
		return
	}
	s.index.Insert(e)
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: e.ID()})
}
