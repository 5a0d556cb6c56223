// internal/utils/coords.go
package utils

import (
	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// BoardToScreen переводит координаты поля в координаты окна.
func BoardToScreen(p utils.Point) (float32, float32) {
	return float32(p.X + config.BoardOffsetX), float32(p.Y + config.BoardOffsetY)
}

// ScreenToBoard выполняет обратное преобразование для позиции курсора.
func ScreenToBoard(x, y int) utils.Point {
	return utils.Point{X: float64(x - config.BoardOffsetX), Y: float64(y - config.BoardOffsetY)}
}
