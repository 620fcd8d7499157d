// internal/defs/waves.go
package defs

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	EnemyID       string  `json:"enemy_id"`
	Count         int     `json:"count"`
	SpawnInterval float64 `json:"spawn_interval"` // seconds between spawns
}

// WavePatterns is the scripted wave sequence, keyed by wave number.
var WavePatterns = map[int]WaveDefinition{
	1:  {EnemyID: "ENEMY_RUNT", Count: 5, SpawnInterval: 0.8},
	2:  {EnemyID: "ENEMY_RUNT", Count: 8, SpawnInterval: 0.7},
	3:  {EnemyID: "ENEMY_GRUNT", Count: 6, SpawnInterval: 0.9},
	4:  {EnemyID: "ENEMY_FAST", Count: 10, SpawnInterval: 0.5},
	5:  {EnemyID: "ENEMY_GRUNT", Count: 12, SpawnInterval: 0.6},
	6:  {EnemyID: "ENEMY_TANK", Count: 4, SpawnInterval: 1.2},
	7:  {EnemyID: "ENEMY_FAST", Count: 16, SpawnInterval: 0.4},
	8:  {EnemyID: "ENEMY_TANK", Count: 7, SpawnInterval: 1.0},
	9:  {EnemyID: "ENEMY_GRUNT", Count: 20, SpawnInterval: 0.4},
	10: {EnemyID: "ENEMY_BOSS", Count: 1, SpawnInterval: 1.0},
}

// WaveFor returns the pattern for a wave number. Waves past the scripted
// table repeat the last pattern with the count scaled up, so the game keeps
// going instead of running dry.
func WaveFor(n int) WaveDefinition {
	if def, ok := WavePatterns[n]; ok {
		return def
	}
	last := WavePatterns[len(WavePatterns)]
	extra := n - len(WavePatterns)
	last.Count += extra * 2
	return last
}
