// internal/ui/status_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
)

// StatusPanel показывает жизни, очки и выбранную башню.
type StatusPanel struct {
	X, Y  int
	Color color.RGBA
	face  font.Face
}

func NewStatusPanel(x, y int, face font.Face) *StatusPanel {
	return &StatusPanel{X: x, Y: y, Color: config.TextLightColor, face: face}
}

// Draw рисует панель. selected это вид башни, которую поставит левый клик.
func (p *StatusPanel) Draw(screen *ebiten.Image, lives, score int, selected defs.TowerKind) {
	lineHeight := p.face.Metrics().Height.Ceil()
	text.Draw(screen, fmt.Sprintf("Lives: %d", lives), p.face, p.X, p.Y, p.Color)
	text.Draw(screen, fmt.Sprintf("Score: %d", score), p.face, p.X, p.Y+lineHeight, p.Color)

	if def, ok := defs.Tower(selected); ok {
		label := fmt.Sprintf("Tower: %s (%d)", def.Name, def.Value(1))
		text.Draw(screen, label, p.face, p.X, p.Y+2*lineHeight, def.Visuals.Color)
	}
}

// DrawHelp рисует подсказку по управлению внизу экрана.
func (p *StatusPanel) DrawHelp(screen *ebiten.Image) {
	const help = "1/2/3 tower  LMB place  RMB remove  N wave  R random  P pause"
	text.Draw(screen, help, p.face, p.X, config.ScreenHeight-10, p.Color)
}
