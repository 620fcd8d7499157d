// internal/system/harness_test.go
package system

import (
	"fmt"
	"sort"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// testWorld is a minimal GameContext for exercising systems in isolation.
// It uses the real pools and spatial index so release/re-bucket behavior is
// the same as in the orchestrator, but entities are placed by hand instead
// of spawned by waves.
type testWorld struct {
	enemies     *entity.EnemyFactory
	projectiles *entity.ProjectileFactory
	zones       *entity.ZoneFactory
	towers      map[types.EntityID]*entity.Tower
	towerOrder  []types.EntityID
	index       *grid.Index[*entity.Enemy]
	path        []utils.Vec

	now     float64
	tick    uint64
	credits int
}

func newTestWorld() *testWorld {
	return &testWorld{
		enemies:     entity.NewEnemyFactory(8),
		projectiles: entity.NewProjectileFactory(8),
		zones:       entity.NewZoneFactory(4),
		towers:      make(map[types.EntityID]*entity.Tower),
		index:       grid.NewIndex[*entity.Enemy](config.CellSize),
	}
}

func (w *testWorld) addEnemy(defID string, x, y float64) *entity.Enemy {
	e := w.enemies.Spawn(defID, utils.Vec{X: x, Y: y})
	if e == nil {
		panic(fmt.Sprintf("addEnemy: unknown definition %q", defID))
	}
	w.index.Insert(e)
	return e
}

func (w *testWorld) addTower(defID string, col, row int) *entity.Tower {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		panic(fmt.Sprintf("addTower: unknown definition %q", defID))
	}
	id := types.EntityID(fmt.Sprintf("tower-%d", len(w.towerOrder)+1))
	t := entity.NewTower(id, def, col, row)
	w.towers[id] = t
	w.towerOrder = append(w.towerOrder, id)
	return t
}

// moveEnemy relocates an enemy and keeps the index in step, the way the
// movement system does.
func (w *testWorld) moveEnemy(e *entity.Enemy, x, y float64) {
	e.X, e.Y = x, y
	w.index.Update(e)
}

func (w *testWorld) Towers() []*entity.Tower {
	out := make([]*entity.Tower, 0, len(w.towerOrder))
	for _, id := range w.towerOrder {
		out = append(out, w.towers[id])
	}
	return out
}

func (w *testWorld) Enemies() []*entity.Enemy {
	return sortedByID(w.enemies.Pool.Active())
}

func (w *testWorld) Projectiles() []*entity.Projectile {
	return sortedByID(w.projectiles.Pool.Active())
}

func (w *testWorld) Zones() []*entity.StormZone {
	return sortedByID(w.zones.Pool.Active())
}

func (w *testWorld) Enemy(id types.EntityID) (*entity.Enemy, bool) {
	return w.enemies.Pool.Get(id)
}

func (w *testWorld) Tower(id types.EntityID) (*entity.Tower, bool) {
	t, ok := w.towers[id]
	return t, ok
}

func (w *testWorld) TowerAt(col, row int) (*entity.Tower, bool) {
	for _, t := range w.towers {
		if t.Col == col && t.Row == row {
			return t, true
		}
	}
	return nil, false
}

func (w *testWorld) CellBlocked(col, row int) bool { return false }

func (w *testWorld) EnemiesNear(x, y, radius float64) []*entity.Enemy {
	return w.index.QueryPoint(x, y, radius)
}

func (w *testWorld) EnemiesNearCell(col, row int, radius float64) []*entity.Enemy {
	return w.index.QueryCell(grid.Cell{Col: col, Row: row}, radius)
}

func (w *testWorld) Path() []utils.Vec { return w.path }

func (w *testWorld) Tick() uint64 { return w.tick }

func (w *testWorld) SpawnProjectile(t *entity.Tower, target *entity.Enemy) *entity.Projectile {
	def, ok := defs.TowerLibrary[t.DefID]
	if !ok {
		return nil
	}
	return w.projectiles.Spawn(t, def, target, w.tick)
}

func (w *testWorld) RemoveEnemy(id types.EntityID) {
	if e, ok := w.enemies.Pool.Get(id); ok {
		w.index.Remove(e)
		w.enemies.Pool.Release(e)
	}
}

func (w *testWorld) GrantCredits(amount int) { w.credits += amount }

func (w *testWorld) Now() float64 { return w.now }

func (w *testWorld) SlowEnemy(id types.EntityID, factor, duration float64) {
	if e, ok := w.enemies.Pool.Get(id); ok {
		e.ApplySlow(factor, w.now+duration)
	}
}

func (w *testWorld) SpawnZone(x, y, radius, duration, dps float64, sourceID types.EntityID) {
	w.zones.Spawn(x, y, radius, duration, dps, w.now, sourceID)
}

func sortedByID[T any](active map[string]T) []T {
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

// countEvents subscribes a counter to an event type.
func countEvents(d *event.Dispatcher, typ event.EventType) *int {
	n := new(int)
	d.Subscribe(typ, event.ListenerFunc(func(event.Event) { *n++ }))
	return n
}
