// internal/state/state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/yuanwang7/TowerDefenceGame/internal/config"
)

// State интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

var _ ebiten.Game = (*StateMachine)(nil)

// StateMachine переключает состояния и сама служит ebiten.Game:
// каждый кадр передаётся текущему состоянию вместе с прошедшим временем.
type StateMachine struct {
	current    State
	lastUpdate time.Time
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{lastUpdate: time.Now()}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() error {
	now := time.Now()
	deltaTime := now.Sub(sm.lastUpdate).Seconds()
	sm.lastUpdate = now
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	return nil
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Layout фиксирует логический размер экрана.
func (sm *StateMachine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
