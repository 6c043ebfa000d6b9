// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-arena-fps/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (s *PauseState) Update(deltaTime float64) {
	// Симуляция и планировщик не обслуживаются: просроченные отложенные
	// вызовы сработают первым тиком после снятия паузы.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.previousState.rt.Game.TogglePause()
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		rt := s.previousState.rt
		rt.Game.QuitToMenu()
		s.stateMachine.SetState(NewMenuState(s.stateMachine, rt))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.ScreenWidth), float32(config.ScreenHeight),
		color.RGBA{0, 0, 0, 128}, false)
	text.Draw(screen, "PAUSED", s.previousState.rt.Face,
		config.ScreenWidth/2-36, config.ScreenHeight/2-20, config.HUDTextColor)
	text.Draw(screen, "ESC - resume   BACKSPACE - quit", s.previousState.rt.Face,
		config.ScreenWidth/2-130, config.ScreenHeight/2+10, config.HUDTextColor)
}

func (s *PauseState) Exit() {}
