// internal/entity/factory.go
package entity

import (
	"log"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/pool"
)

// EnemyFactory combines the enemy pool with stat initialization from the
// enemy library.
type EnemyFactory struct {
	Pool *pool.Pool[*Enemy]
}

func NewEnemyFactory(initialSize int) *EnemyFactory {
	return &EnemyFactory{
		Pool: pool.New("enemy", initialSize,
			func() *Enemy { return &Enemy{} },
			ResetEnemy,
		),
	}
}

// Spawn acquires and initializes an enemy of the given type. Returns nil for
// an unknown definition id; a missing stat table entry is a data bug, not a
// reason to crash mid-wave.
func (f *EnemyFactory) Spawn(defID string, start utils.Vec) *Enemy {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("entity: no enemy definition %q", defID)
		return nil
	}
	e := f.Pool.Acquire()
	e.Init(def, start)
	return e
}

// ProjectileFactory combines the projectile pool with per-shot setup.
type ProjectileFactory struct {
	Pool *pool.Pool[*Projectile]
}

func NewProjectileFactory(initialSize int) *ProjectileFactory {
	return &ProjectileFactory{
		Pool: pool.New("proj", initialSize,
			func() *Projectile { return &Projectile{} },
			ResetProjectile,
		),
	}
}

// Spawn launches a projectile from a tower at a target enemy. SpawnTick lets
// the orchestrator keep this tick's shots out of this tick's flight phase.
func (f *ProjectileFactory) Spawn(t *Tower, def defs.TowerDefinition, target *Enemy, tick uint64) *Projectile {
	p := f.Pool.Acquire()
	p.X, p.Y = t.X, t.Y
	p.SourceID = t.ID
	p.TargetID = target.ID()
	p.TargetPos = utils.Vec{X: target.X, Y: target.Y}
	p.Speed = def.ProjectileSpeed
	p.Damage = t.Damage
	p.Piercing = def.Piercing
	p.Aoe = t.SplashRadius
	p.SpawnTick = tick
	return p
}

// ZoneFactory combines the zone pool with activation.
type ZoneFactory struct {
	Pool *pool.Pool[*StormZone]
}

func NewZoneFactory(initialSize int) *ZoneFactory {
	return &ZoneFactory{
		Pool: pool.New("zone", initialSize,
			func() *StormZone { return &StormZone{} },
			ResetZone,
		),
	}
}

// Spawn activates a zone at a point.
func (f *ZoneFactory) Spawn(x, y, radius, duration, dps, now float64, sourceID types.EntityID) *StormZone {
	z := f.Pool.Acquire()
	z.Init(x, y, radius, duration, dps, now, sourceID)
	return z
}
