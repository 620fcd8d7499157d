// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"` // px per second
	Armor   float64 `json:"armor"` // flat reduction per hit
	Reward  int     `json:"reward"`
	Visuals Visuals `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by id.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_RUNT": {
		ID: "ENEMY_RUNT", Name: "Runt",
		Health: 40, Speed: 70, Armor: 0, Reward: 4,
		Visuals: Visuals{Color: color.RGBA{220, 60, 60, 255}},
	},
	"ENEMY_GRUNT": {
		ID: "ENEMY_GRUNT", Name: "Grunt",
		Health: 90, Speed: 60, Armor: 2, Reward: 7,
		Visuals: Visuals{Color: color.RGBA{200, 90, 40, 255}},
	},
	"ENEMY_FAST": {
		ID: "ENEMY_FAST", Name: "Skitter",
		Health: 55, Speed: 120, Armor: 0, Reward: 6,
		Visuals: Visuals{Color: color.RGBA{240, 200, 60, 255}},
	},
	"ENEMY_TANK": {
		ID: "ENEMY_TANK", Name: "Juggernaut",
		Health: 300, Speed: 35, Armor: 6, Reward: 18,
		Visuals: Visuals{Color: color.RGBA{140, 70, 160, 255}},
	},
	"ENEMY_BOSS": {
		ID: "ENEMY_BOSS", Name: "Warlord",
		Health: 1200, Speed: 30, Armor: 10, Reward: 120,
		Visuals: Visuals{Color: color.RGBA{90, 20, 20, 255}},
	},
}
