// internal/interfaces/snapshot.go
package interfaces

import (
	"image/color"

	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// Snapshot is the read-only view of simulation state the rendering/HUD layer
// consumes after each tick. Nothing in it feeds back into the simulation.
type Snapshot struct {
	Time     float64
	Wave     int
	Credits  int
	Lives    int
	GameOver bool

	Path        []utils.Vec
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	Zones       []ZoneView
}

type EnemyView struct {
	ID     types.EntityID
	X, Y   float64
	Health float64
	MaxHP  float64
	Slowed bool
	Color  color.RGBA
}

type TowerView struct {
	ID       types.EntityID
	DefID    string
	Col, Row int
	X, Y     float64
	Level    int
	Range    float64
	Kills    int
	Color    color.RGBA
}

type ProjectileView struct {
	ID   types.EntityID
	X, Y float64
}

type ZoneView struct {
	ID     types.EntityID
	X, Y   float64
	Radius float64
}
