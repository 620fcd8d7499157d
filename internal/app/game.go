// internal/app/game.go
package app

import (
	"sort"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// Game is the simulation orchestrator. It owns the entity pools, the spatial
// index, the player ledger and the per-tick phase ordering, and implements
// the query/command surfaces the systems consume. Each Game instance is
// self-contained: nothing here is package-global, so tests can run many
// simulations side by side.
type Game struct {
	path      []utils.Vec
	pathCells map[grid.Cell]bool

	enemies     *entity.EnemyFactory
	projectiles *entity.ProjectileFactory
	zones       *entity.ZoneFactory
	towers      map[types.EntityID]*entity.Tower
	towerOrder  []types.EntityID
	towerCells  map[grid.Cell]types.EntityID
	index       *grid.Index[*entity.Enemy]

	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	combatSystem     *system.CombatSystem
	projectileSystem *system.ProjectileSystem
	zoneSystem       *system.ZoneSystem
	waveSystem       *system.WaveSystem
	movementSystem   *system.MovementSystem

	gameTime    float64
	tick        uint64
	credits     int
	lives       int
	gameOver    bool
	nextTowerID int
}

// NewGame wires a simulation over the given lane. Seed 0 means "seed from
// the clock"; tests pass a fixed seed.
func NewGame(lane []grid.Cell, seed int64) *Game {
	g := &Game{
		path:        BuildPath(lane),
		pathCells:   make(map[grid.Cell]bool, len(lane)),
		enemies:     entity.NewEnemyFactory(config.EnemyPoolSize),
		projectiles: entity.NewProjectileFactory(config.ProjectilePoolSize),
		zones:       entity.NewZoneFactory(config.ZonePoolSize),
		towers:      make(map[types.EntityID]*entity.Tower),
		towerCells:  make(map[grid.Cell]types.EntityID),
		index:       grid.NewIndex[*entity.Enemy](config.CellSize),
		dispatcher:  event.NewDispatcher(),
		rng:         utils.NewPRNGService(seed),
		credits:     config.StartCredits,
		lives:       config.StartLives,
	}
	for _, c := range lane {
		g.pathCells[c] = true
	}

	g.combatSystem = system.NewCombatSystem(g, g.dispatcher, nil)
	g.projectileSystem = system.NewProjectileSystem(g, g.dispatcher, g.projectiles)
	g.zoneSystem = system.NewZoneSystem(g, g.dispatcher, g.zones)
	g.waveSystem = system.NewWaveSystem(g, g.dispatcher, g.enemies, g.index, g.rng)
	g.movementSystem = system.NewMovementSystem(g, g.dispatcher, g.enemies, g.index)

	g.dispatcher.Subscribe(event.EnemyEscaped, event.ListenerFunc(g.onEnemyEscaped))
	return g
}

// Dispatcher exposes the event stream for the rendering/HUD layer.
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }

// Update advances the simulation by one fixed step. Phase ordering: towers
// fully resolve targeting/firing first, then projectiles fly, then zones
// burn, then enemies move and spawn. No entity is touched by two phases.
func (g *Game) Update(dt float64) {
	if g.gameOver {
		return
	}
	g.tick++
	g.gameTime += dt

	g.combatSystem.Update(dt)
	g.projectileSystem.Update(dt)
	g.zoneSystem.Update(dt)
	g.waveSystem.Update(dt)
	g.movementSystem.Update(dt)
}

// StartWaves launches the first wave. Subsequent waves chain automatically.
func (g *Game) StartWaves() {
	if g.waveSystem.Wave() == 0 {
		g.waveSystem.StartWave(1)
	}
}

// WaveInProgress reports whether enemies are spawning or alive.
func (g *Game) WaveInProgress() bool { return g.waveSystem.InProgress() }

// Credits returns the current credit balance.
func (g *Game) Credits() int { return g.credits }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// GameOver reports whether the lives ledger has run dry.
func (g *Game) GameOver() bool { return g.gameOver }

// Reset restores a fresh simulation on the same lane: every pooled entity is
// force-retired, towers are cleared and the ledgers return to their starting
// values.
func (g *Game) Reset() {
	g.enemies.Pool.Reset()
	g.projectiles.Pool.Reset()
	g.zones.Pool.Reset()
	g.index.Clear()
	g.towers = make(map[types.EntityID]*entity.Tower)
	g.towerOrder = nil
	g.towerCells = make(map[grid.Cell]types.EntityID)
	g.waveSystem.Reset()
	g.gameTime = 0
	g.tick = 0
	g.credits = config.StartCredits
	g.lives = config.StartLives
	g.gameOver = false
}

func (g *Game) onEnemyEscaped(event.Event) {
	if g.gameOver {
		return
	}
	g.lives--
	g.dispatcher.Dispatch(event.Event{Type: event.LivesChanged, Data: g.lives})
	if g.lives <= 0 {
		g.gameOver = true
	}
}

// --- interfaces.Query ---

func (g *Game) Towers() []*entity.Tower {
	out := make([]*entity.Tower, 0, len(g.towerOrder))
	for _, id := range g.towerOrder {
		out = append(out, g.towers[id])
	}
	return out
}

func (g *Game) Enemies() []*entity.Enemy {
	return sortedActive(g.enemies.Pool.Active())
}

func (g *Game) Projectiles() []*entity.Projectile {
	return sortedActive(g.projectiles.Pool.Active())
}

func (g *Game) Zones() []*entity.StormZone {
	return sortedActive(g.zones.Pool.Active())
}

func (g *Game) Enemy(id types.EntityID) (*entity.Enemy, bool) {
	return g.enemies.Pool.Get(id)
}

func (g *Game) Tower(id types.EntityID) (*entity.Tower, bool) {
	t, ok := g.towers[id]
	return t, ok
}

func (g *Game) TowerAt(col, row int) (*entity.Tower, bool) {
	id, ok := g.towerCells[grid.Cell{Col: col, Row: row}]
	if !ok {
		return nil, false
	}
	return g.towers[id], true
}

func (g *Game) CellBlocked(col, row int) bool {
	if col < 0 || col >= config.GridCols || row < 0 || row >= config.GridRows {
		return true
	}
	c := grid.Cell{Col: col, Row: row}
	if g.pathCells[c] {
		return true
	}
	_, occupied := g.towerCells[c]
	return occupied
}

func (g *Game) EnemiesNear(x, y, radius float64) []*entity.Enemy {
	return g.index.QueryPoint(x, y, radius)
}

func (g *Game) EnemiesNearCell(col, row int, radius float64) []*entity.Enemy {
	return g.index.QueryCell(grid.Cell{Col: col, Row: row}, radius)
}

func (g *Game) Path() []utils.Vec { return g.path }

func (g *Game) Tick() uint64 { return g.tick }

// --- interfaces.Command ---

func (g *Game) SpawnProjectile(t *entity.Tower, target *entity.Enemy) *entity.Projectile {
	def, ok := defs.TowerLibrary[t.DefID]
	if !ok {
		return nil
	}
	return g.projectiles.Spawn(t, def, target, g.tick)
}

func (g *Game) RemoveEnemy(id types.EntityID) {
	e, ok := g.enemies.Pool.Get(id)
	if !ok {
		return
	}
	g.index.Remove(e)
	g.enemies.Pool.Release(e)
}

func (g *Game) GrantCredits(amount int) {
	g.credits += amount
	g.dispatcher.Dispatch(event.Event{Type: event.CreditsChanged, Data: g.credits})
}

func (g *Game) Now() float64 { return g.gameTime }

func (g *Game) SlowEnemy(id types.EntityID, factor, duration float64) {
	if e, ok := g.enemies.Pool.Get(id); ok {
		e.ApplySlow(factor, g.gameTime+duration)
	}
}

func (g *Game) SpawnZone(x, y, radius, duration, dps float64, sourceID types.EntityID) {
	g.zones.Spawn(x, y, radius, duration, dps, g.gameTime, sourceID)
}

// sortedActive returns a pool's live set in stable id order, so per-tick
// iteration is reproducible run to run.
func sortedActive[T any](active map[string]T) []T {
	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, active[id])
	}
	return out
}
