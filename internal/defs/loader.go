// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower configuration file and replaces the
// built-in TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// built-in EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}
