// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 480
	BoardOffsetX = 60 // Отступ поля от края окна
	BoardOffsetY = 60

	CellSize    = 60.0
	GridColumns = 6
	GridRows    = 6
	EntryRow    = 1 // Строка входа и выхода врагов

	// Логика продвигается только на каждом TickDivisor-м внешнем тике
	TickDivisor = 2

	StartingLives = 20
	DefaultSeed   = 0

	RandomWaveEnemies = 20
	RandomWaveSteps   = 200

	HighScoreFile = "high_scores.json"
	HighScoreGame = "basic"
	TopScores     = 10

	TowerDefinitionsFile = "assets/defs/towers.json"
	EnemyDefinitionsFile = "assets/defs/enemies.json"

	HealthBarHeight = 4.0
	StrokeWidth     = 1.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BorderColor     = color.RGBA{70, 100, 120, 220}
	PathColor       = color.RGBA{255, 255, 0, 128}
	LegalColor      = color.RGBA{50, 205, 50, 160}
	IllegalColor    = color.RGBA{220, 60, 60, 160}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthColor     = color.RGBA{50, 205, 50, 255}
	HealthLostColor = color.RGBA{150, 70, 70, 255}
	ObstacleColor   = color.RGBA{255, 215, 0, 255}
	PulseColor      = color.RGBA{180, 50, 230, 200}
)
