package state

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/internal/highscore"
)

// GameOverState записывает результат и ждёт перезапуска.
type GameOverState struct {
	sm     *StateMachine
	scores *highscore.Manager
	score  int
	wave   int
}

func NewGameOverState(sm *StateMachine, scores *highscore.Manager, score, wave int) *GameOverState {
	return &GameOverState{sm: sm, scores: scores, score: score, wave: wave}
}

func (s *GameOverState) Enter() {
	if !s.scores.DoesScoreQualify(s.score, config.HighScoreGame) {
		return
	}
	data, err := json.Marshal(map[string]int{"wave": s.wave})
	if err != nil {
		log.Printf("Failed to encode score data: %v", err)
	}
	if dropped, ok := s.scores.AddEntry("Player", s.score, data, config.HighScoreGame); ok {
		log.Printf("Score %d of %s dropped off the board", dropped.Score, dropped.Name)
	}
	if err := s.scores.Save(); err != nil {
		log.Printf("Failed to save high scores: %v", err)
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs, err := NewGameState(s.sm, s.scores)
		if err != nil {
			log.Printf("Failed to restart game: %v", err)
			return
		}
		s.sm.SetState(gs)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "GAME OVER", face, 205, 60, config.ExitColor)
	text.Draw(screen, fmt.Sprintf("Score %d, wave %d", s.score, s.wave), face, 170, 85, config.TextLightColor)
	drawScoreTable(screen, s.scores, 120)
	text.Draw(screen, "Press SPACE to restart", face, 165, config.ScreenHeight-40, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
