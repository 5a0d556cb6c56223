package defs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defs.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func keepEnemyLibrary(t *testing.T) {
	saved := make(map[EnemyKind]EnemyDefinition, len(EnemyLibrary))
	for k, v := range EnemyLibrary {
		saved[k] = v
	}
	t.Cleanup(func() { EnemyLibrary = saved })
}

func keepTowerLibrary(t *testing.T) {
	saved := make(map[TowerKind]TowerDefinition, len(TowerLibrary))
	for k, v := range TowerLibrary {
		saved[k] = v
	}
	t.Cleanup(func() { TowerLibrary = saved })
}

func TestLoadEnemyDefinitionsOverrides(t *testing.T) {
	keepEnemyLibrary(t)
	path := writeFile(t, `[{"kind": "SIMPLE", "name": "Tough", "health": 300, "speed": 2, "points": 7,
		"footprint": {"w": 0.5, "h": 0.5}}]`)

	require.NoError(t, LoadEnemyDefinitions(path))

	def, ok := Enemy(EnemySimple)
	require.True(t, ok)
	assert.Equal(t, 300, def.Health)
	assert.Equal(t, 2.0, def.Speed)
	assert.Equal(t, Footprint{W: 0.5, H: 0.5}, def.Footprint)

	// untouched kinds keep their built-in values
	armored, _ := Enemy(EnemyArmored)
	assert.Equal(t, 250, armored.Health)
}

func TestLoadTowerDefinitionsOverrides(t *testing.T) {
	keepTowerLibrary(t)
	path := writeFile(t, `[{"kind": "PULSE", "name": "Pulse", "range": {"shape": "CIRCLE", "outer": 3},
		"cooldown_steps": 5, "base_cost": 1, "level_cost": 1}]`)

	require.NoError(t, LoadTowerDefinitions(path))

	def, _ := Tower(TowerPulse)
	assert.Equal(t, RangeDef{Shape: RangeCircle, Outer: 3}, def.Range)
	assert.Equal(t, 5, def.CooldownSteps)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	keepTowerLibrary(t)
	path := writeFile(t, `[{"kind": "SIMPLE", "base_cost": 1}, {"kind": "LASER"}]`)

	err := LoadTowerDefinitions(path)
	require.ErrorIs(t, err, ErrUnknownKind)

	// nothing is applied on error
	def, _ := Tower(TowerSimple)
	assert.Equal(t, 20, def.BaseCost)
}

func TestLoadErrors(t *testing.T) {
	keepEnemyLibrary(t)
	err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	err = LoadEnemyDefinitions(writeFile(t, `{not json`))
	assert.Error(t, err)
}

func TestBundledDefinitionsMatchBuiltins(t *testing.T) {
	keepEnemyLibrary(t)
	keepTowerLibrary(t)
	wantEnemies := make(map[EnemyKind]EnemyDefinition, len(EnemyLibrary))
	for kind, def := range EnemyLibrary {
		wantEnemies[kind] = def
	}
	wantTowers := make(map[TowerKind]TowerDefinition, len(TowerLibrary))
	for kind, def := range TowerLibrary {
		wantTowers[kind] = def
	}

	require.NoError(t, LoadEnemyDefinitions(filepath.Join("..", "..", "assets", "defs", "enemies.json")))
	require.NoError(t, LoadTowerDefinitions(filepath.Join("..", "..", "assets", "defs", "towers.json")))

	assert.Equal(t, wantEnemies, EnemyLibrary)
	assert.Equal(t, wantTowers, TowerLibrary)
	// exact turn steps, the JSON must round-trip the Go constants
	assert.Equal(t, math.Pi/6, TowerLibrary[TowerSimple].RotationStep)
	assert.Equal(t, math.Pi/3, TowerLibrary[TowerMissile].RotationStep)
}
