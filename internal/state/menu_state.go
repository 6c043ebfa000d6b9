// internal/state/menu_state.go
package state

import (
	"go-arena-fps/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — стартовый экран
type MenuState struct {
	sm *StateMachine
	rt *Runtime
}

func NewMenuState(sm *StateMachine, rt *Runtime) *MenuState {
	return &MenuState{sm: sm, rt: rt}
}

func (m *MenuState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.startRun(false)
		return
	}
	if m.rt.NGPlusUnlocked && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		m.startRun(true)
	}
}

func (m *MenuState) startRun(newGamePlus bool) {
	m.rt.HUD.Reset()
	m.rt.Game.StartRun(newGamePlus)
	m.sm.SetState(NewGameState(m.sm, m.rt))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	cx := config.ScreenWidth / 2
	text.Draw(screen, "ARENA", m.rt.Face, cx-30, config.ScreenHeight/2-60, config.HUDTextColor)
	text.Draw(screen, "SPACE - start", m.rt.Face, cx-60, config.ScreenHeight/2, config.HUDTextColor)
	if m.rt.NGPlusUnlocked {
		text.Draw(screen, "N - new game+", m.rt.Face, cx-60, config.ScreenHeight/2+32, config.MessageColor)
	}
}

func (m *MenuState) Exit() {}
