// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640

	// World grid. CellSize is both the spatial-index bucket size and the
	// footprint of a placed tower.
	CellSize = 32.0
	GridCols = ScreenWidth / 32
	GridRows = ScreenHeight / 32

	// Simulation clock.
	TickRate      = 60.0  // fixed steps per second
	MaxFrameDelta = 250.0 // ms; clamp on a single frame's elapsed time

	// Entity tuning.
	WaypointEpsilon = 1.0 // distance units; cursor advances inside this
	ArrivalEpsilon  = 1.0 // projectile counts as arrived inside this
	MinFireInterval = 0.05
	EnemyRadius     = 9.0

	// Pool sizing. Pools grow on demand; these only set the warm start.
	EnemyPoolSize      = 64
	ProjectilePoolSize = 128
	ZonePoolSize       = 8

	// Pierce policy (orchestrator-level, see system.ProjectileSystem).
	PierceMaxHits   = 3
	PierceMaxTravel = 600.0
	PierceRetarget  = 120.0 // search radius for the next victim after a hit

	// Player ledger.
	StartCredits = 120
	StartLives   = 20
	SellRefund   = 0.6 // fraction of invested credits returned on sale

	// Waves.
	WaveCooldown = 4.0 // seconds between wave complete and next wave start
	SpawnJitter  = 6.0 // px of lateral offset at the spawn point
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{40, 40, 55, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	HealthBarBack   = color.RGBA{60, 20, 20, 255}
	HealthBarFront  = color.RGBA{50, 205, 50, 255}
	ProjectileColor = color.RGBA{255, 240, 120, 255}
	ZoneColor       = color.RGBA{120, 160, 255, 70}
	ZoneStrokeColor = color.RGBA{120, 160, 255, 180}
	RangeRingColor  = color.RGBA{240, 240, 240, 90}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HUDPanelColor   = color.RGBA{20, 20, 30, 200}
)
