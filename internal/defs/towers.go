// internal/defs/towers.go
package defs

import "image/color"

// Visuals contains parameters for rendering an entity kind.
type Visuals struct {
	Color color.RGBA `json:"color"`
}

// TowerDefinition holds all the static data for a specific type of tower.
// Combat stats are linear per-level coefficients; entity.Tower evaluates and
// clamps them on placement and upgrade.
type TowerDefinition struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Kind     AttackKind `json:"kind"`
	Cost     int        `json:"cost"`
	MaxLevel int        `json:"max_level"`

	Damage       Scaled `json:"damage"`
	Range        Scaled `json:"range"`         // px from the tower's cell center
	FireInterval Scaled `json:"fire_interval"` // seconds between shots; negative growth = faster

	// Projectile kinds.
	ProjectileSpeed float64 `json:"projectile_speed,omitempty"`
	SplashRadius    Scaled  `json:"splash_radius,omitempty"`
	Piercing        bool    `json:"piercing,omitempty"`

	// Chain kind.
	ChainCount  Scaled  `json:"chain_count,omitempty"`
	ChainRadius float64 `json:"chain_radius,omitempty"`

	// Storm kind.
	ZoneRadius   Scaled `json:"zone_radius,omitempty"`
	ZoneDuration Scaled `json:"zone_duration,omitempty"`
	ZoneDPS      Scaled `json:"zone_dps,omitempty"`

	// Slow kind.
	SlowFactor   Scaled `json:"slow_factor,omitempty"`   // speed multiplier while slowed
	SlowDuration Scaled `json:"slow_duration,omitempty"` // seconds

	Visuals Visuals `json:"visuals"`
}

// TowerLibrary is the library of all tower definitions, keyed by id.
// JSON files loaded through LoadTowerDefinitions replace these defaults.
var TowerLibrary = map[string]TowerDefinition{
	"TOWER_CANNON": {
		ID: "TOWER_CANNON", Name: "Cannon", Kind: AttackProjectile,
		Cost: 50, MaxLevel: 5,
		Damage:          Scaled{Base: 20, Growth: 8},
		Range:           Scaled{Base: 120, Growth: 10},
		FireInterval:    Scaled{Base: 1.0, Growth: -0.08},
		ProjectileSpeed: 360,
		SplashRadius:    Scaled{Base: 40, Growth: 4},
		Visuals:         Visuals{Color: color.RGBA{255, 120, 50, 255}},
	},
	"TOWER_ARROW": {
		ID: "TOWER_ARROW", Name: "Arrow", Kind: AttackProjectile,
		Cost: 30, MaxLevel: 5,
		Damage:          Scaled{Base: 8, Growth: 4},
		Range:           Scaled{Base: 150, Growth: 12},
		FireInterval:    Scaled{Base: 0.4, Growth: -0.05},
		ProjectileSpeed: 500,
		Piercing:        true,
		Visuals:         Visuals{Color: color.RGBA{50, 255, 50, 255}},
	},
	"TOWER_FROST": {
		ID: "TOWER_FROST", Name: "Frost", Kind: AttackSlow,
		Cost: 40, MaxLevel: 5,
		Damage:       Scaled{Base: 0, Growth: 0},
		Range:        Scaled{Base: 100, Growth: 8},
		FireInterval: Scaled{Base: 2.0, Growth: -0.2},
		SlowFactor:   Scaled{Base: 0.5, Growth: -0.05},
		SlowDuration: Scaled{Base: 2.0, Growth: 0.4},
		Visuals:      Visuals{Color: color.RGBA{80, 180, 255, 255}},
	},
	"TOWER_TESLA": {
		ID: "TOWER_TESLA", Name: "Tesla", Kind: AttackChain,
		Cost: 70, MaxLevel: 5,
		Damage:       Scaled{Base: 14, Growth: 6},
		Range:        Scaled{Base: 110, Growth: 8},
		FireInterval: Scaled{Base: 1.4, Growth: -0.1},
		ChainCount:   Scaled{Base: 3, Growth: 1},
		ChainRadius:  90,
		Visuals:      Visuals{Color: color.RGBA{180, 50, 230, 255}},
	},
	"TOWER_STORM": {
		ID: "TOWER_STORM", Name: "Storm", Kind: AttackStorm,
		Cost: 90, MaxLevel: 5,
		Damage:       Scaled{Base: 0, Growth: 0},
		Range:        Scaled{Base: 140, Growth: 10},
		FireInterval: Scaled{Base: 5.0, Growth: -0.4},
		ZoneRadius:   Scaled{Base: 50, Growth: 6},
		ZoneDuration: Scaled{Base: 3.0, Growth: 0.5},
		ZoneDPS:      Scaled{Base: 10, Growth: 4},
		Visuals:      Visuals{Color: color.RGBA{120, 160, 255, 255}},
	},
}
