// cmd/game/main.go
package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/highscore"
	"github.com/yuanwang7/TowerDefenceGame/internal/state"
)

const startFromGame = false // true: начинать с игры, false: с меню

// loadDefinitions applies the optional JSON overrides of the built-in units.
func loadDefinitions() {
	if err := defs.LoadTowerDefinitions(config.TowerDefinitionsFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load tower definitions: %v", err)
	}
	if err := defs.LoadEnemyDefinitions(config.EnemyDefinitionsFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load enemy definitions: %v", err)
	}
}

func main() {
	loadDefinitions()

	scores, err := highscore.NewManager(config.HighScoreFile, config.TopScores)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		gs, err := state.NewGameState(sm, scores)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, scores)) // Устанавливаем состояние меню
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Towers")
	if err := ebiten.RunGame(sm); err != nil {
		log.Fatal(err)
	}
}
