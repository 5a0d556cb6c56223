// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	game "github.com/yuanwang7/TowerDefenceGame/internal/app"
	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/event"
	"github.com/yuanwang7/TowerDefenceGame/internal/highscore"
	"github.com/yuanwang7/TowerDefenceGame/internal/ui"
	"github.com/yuanwang7/TowerDefenceGame/internal/utils"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
	"github.com/yuanwang7/TowerDefenceGame/pkg/render"
)

var towerHotkeys = map[ebiten.Key]defs.TowerKind{
	ebiten.Key1: defs.TowerSimple,
	ebiten.Key2: defs.TowerMissile,
	ebiten.Key3: defs.TowerPulse,
}

// GameState состояние игры
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.BoardRenderer
	status   *ui.StatusPanel
	wave     *ui.WaveIndicator
	scores   *highscore.Manager
	face     font.Face
	level    *defs.Level

	waveNumber int
	selected   defs.TowerKind
	lives      int
	score      int
}

func NewGameState(sm *StateMachine, scores *highscore.Manager) (*GameState, error) {
	settings := game.DefaultSettings()
	settings.WaveMix = defs.RandomWaveMix
	gameLogic, err := game.NewGame(settings)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	// Создаем и заполняем структуру с цветами для рендерера
	colors := &render.BoardColors{
		BackgroundColor: config.BackgroundColor,
		BorderColor:     config.BorderColor,
		PathColor:       config.PathColor,
		LegalColor:      config.LegalColor,
		IllegalColor:    config.IllegalColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		HealthColor:     config.HealthColor,
		HealthLostColor: config.HealthLostColor,
		ObstacleColor:   config.ObstacleColor,
		PulseColor:      config.PulseColor,
		StrokeWidth:     float32(config.StrokeWidth),
		HealthBarHeight: float32(config.HealthBarHeight),
	}

	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: render.NewBoardRenderer(gameLogic.Grid(), colors),
		status:   ui.NewStatusPanel(10, 18, face),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2, 18, face),
		scores:   scores,
		face:     face,
		level:    defs.NewLevel(defs.DifficultyNormal),
		selected: defs.TowerSimple,
		lives:    config.StartingLives,
	}, nil
}

func (g *GameState) Enter() {
	g.game.EventDispatcher.Subscribe(event.EnemyDeath, g)
	g.game.EventDispatcher.Subscribe(event.EnemyEscape, g)
}

func (g *GameState) Exit() {
	g.game.EventDispatcher.Unsubscribe(event.EnemyDeath, g)
	g.game.EventDispatcher.Unsubscribe(event.EnemyEscape, g)
}

// OnEvent ведёт счёт: очки за убитых врагов, жизни за сбежавших.
func (g *GameState) OnEvent(e event.Event) {
	enemies, _ := e.Data.([]*component.Enemy)
	switch e.Type {
	case event.EnemyDeath:
		for _, enemy := range enemies {
			g.score += enemy.Points
		}
	case event.EnemyEscape:
		g.lives -= len(enemies)
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	for key, kind := range towerHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selected = kind
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.nextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.game.SendWave(false, config.RandomWaveEnemies, config.RandomWaveSteps); err != nil {
			log.Printf("Failed to send random wave: %v", err)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cell := g.cursorCell()
		if !g.game.Place(cell, g.selected) {
			log.Printf("Cannot place %s tower at %v", g.selected, cell)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if _, err := g.game.Remove(g.cursorCell()); err != nil {
			log.Printf("Failed to remove tower: %v", err)
		}
	}

	g.game.Step()

	if g.lives <= 0 {
		g.sm.SetState(NewGameOverState(g.sm, g.scores, g.score, g.waveNumber))
	}
}

func (g *GameState) nextWave() {
	g.waveNumber++
	if err := g.game.QueueLevelWave(g.level.Wave(g.waveNumber), false); err != nil {
		log.Printf("Failed to queue wave %d: %v", g.waveNumber, err)
	}
}

func (g *GameState) cursorCell() grid.Cell {
	x, y := ebiten.CursorPosition()
	return g.game.Grid().PixelToCell(utils.ScreenToBoard(x, y))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	position := utils.ScreenToBoard(x, y)
	legal, path := g.game.AttemptPlacement(position)

	g.renderer.DrawBoard(screen, path)
	g.renderer.DrawPreview(screen, g.game.Grid().PixelToCell(position), legal)
	g.renderer.DrawPath(screen, path)
	g.renderer.DrawTowers(screen, g.game.Towers())
	g.renderer.DrawEnemies(screen, g.game.Enemies())
	g.renderer.DrawObstacles(screen, g.game.Obstacles())

	g.status.Draw(screen, g.lives, g.score, g.selected)
	g.status.DrawHelp(screen)
	g.wave.Draw(screen, g.waveNumber)
}
