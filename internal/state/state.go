// internal/state/state.go
package state

import (
	game "go-arena-fps/internal/app"
	"go-arena-fps/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-arena-fps/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
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
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Runtime — объекты, переживающие смену состояний: симуляция, HUD,
// рендерер сцены и шрифт интерфейса. NGPlusUnlocked взводится после
// первой победы и открывает пункт New Game+ в меню.
type Runtime struct {
	Game           *game.Game
	HUD            *ui.HUD
	Renderer       *render.SceneRenderer
	Face           font.Face
	NGPlusUnlocked bool
}
