// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/internal/highscore"
)

// MenuState стартовый экран с таблицей рекордов
type MenuState struct {
	sm     *StateMachine
	scores *highscore.Manager
}

func NewMenuState(sm *StateMachine, scores *highscore.Manager) *MenuState {
	return &MenuState{sm: sm, scores: scores}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs, err := NewGameState(m.sm, m.scores)
		if err != nil {
			log.Printf("Failed to start game: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawScoreTable(screen, m.scores, 120)
	text.Draw(screen, "Press SPACE to start", basicfont.Face7x13, 170, config.ScreenHeight-40, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// drawScoreTable рисует таблицу рекордов начиная с высоты y.
func drawScoreTable(screen *ebiten.Image, scores *highscore.Manager, y int) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 4
	text.Draw(screen, "HIGH SCORES", face, 190, y, config.TextLightColor)
	for i, entry := range scores.Entries(config.HighScoreGame) {
		line := fmt.Sprintf("%2d. %-12s %6d", i+1, entry.Name, entry.Score)
		text.Draw(screen, line, face, 140, y+(i+2)*lineHeight, config.TextLightColor)
	}
}
