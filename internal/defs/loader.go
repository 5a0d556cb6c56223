// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrUnknownKind is returned when a definitions file names a kind without behaviour.
var ErrUnknownKind = errors.New("unknown kind")

// LoadTowerDefinitions reads the tower configuration file and overrides the matching
// entries of TowerLibrary. On error the library is left unchanged.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	for _, def := range towerDefs {
		if _, ok := TowerLibrary[def.Kind]; !ok {
			return fmt.Errorf("tower definition %q: %w", def.Kind, ErrUnknownKind)
		}
	}

	for _, def := range towerDefs {
		TowerLibrary[def.Kind] = def
	}
	log.Printf("Loaded %d tower definitions from %s", len(towerDefs), path)
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and overrides the matching
// entries of EnemyLibrary. On error the library is left unchanged.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for _, def := range enemyDefs {
		if _, ok := EnemyLibrary[def.Kind]; !ok {
			return fmt.Errorf("enemy definition %q: %w", def.Kind, ErrUnknownKind)
		}
	}

	for _, def := range enemyDefs {
		EnemyLibrary[def.Kind] = def
	}
	log.Printf("Loaded %d enemy definitions from %s", len(enemyDefs), path)
	return nil
}
