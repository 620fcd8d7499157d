// internal/interfaces/game_context.go
package interfaces

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// Query is the read surface systems use. All cross-entity references resolve
// through here by id, at use time: a despawned entity yields "not found",
// never a dangling access.
type Query interface {
	Towers() []*entity.Tower
	Enemies() []*entity.Enemy
	Projectiles() []*entity.Projectile
	Zones() []*entity.StormZone

	Enemy(id types.EntityID) (*entity.Enemy, bool)
	Tower(id types.EntityID) (*entity.Tower, bool)
	TowerAt(col, row int) (*entity.Tower, bool)
	CellBlocked(col, row int) bool

	// EnemiesNear measures from the point; EnemiesNearCell measures from the
	// center of the cell (tower anchors are cell-centered).
	EnemiesNear(x, y, radius float64) []*entity.Enemy
	EnemiesNearCell(col, row int, radius float64) []*entity.Enemy

	Path() []utils.Vec
	Tick() uint64
}

// Command is the mutation surface systems use.
type Command interface {
	SpawnProjectile(t *entity.Tower, target *entity.Enemy) *entity.Projectile
	RemoveEnemy(id types.EntityID)
	GrantCredits(amount int)
	Now() float64
	SlowEnemy(id types.EntityID, factor, duration float64)
	SpawnZone(x, y, radius, duration, dps float64, sourceID types.EntityID)
}

// GameContext is the full surface the orchestrator hands to systems.
type GameContext interface {
	Query
	Command
}
