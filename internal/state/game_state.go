// internal/state/game_state.go
package state

import (
	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const mouseSensitivity = 0.0035

// GameState — активный забег: опрос ввода, шаг симуляции, отрисовка.
type GameState struct {
	sm *StateMachine
	rt *Runtime

	lastCursorX int
	lastCursorY int
	cursorInit  bool
}

func NewGameState(sm *StateMachine, rt *Runtime) *GameState {
	return &GameState{sm: sm, rt: rt}
}

func (g *GameState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.cursorInit = false
}

func (g *GameState) Update(deltaTime float64) {
	mode := g.rt.Game.Mode()

	if mode == component.ModeGameOver || mode == component.ModeVictory {
		if mode == component.ModeVictory {
			g.rt.NGPlusUnlocked = true
		}
		g.rt.Game.Update(deltaTime, component.InputIntents{})
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.rt.Game.QuitToMenu()
			g.sm.SetState(NewMenuState(g.sm, g.rt))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.rt.Game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.rt.Game.Update(deltaTime, g.pollInput())
	g.rt.Renderer.Update(deltaTime)
}

// pollInput собирает намерения игрока за кадр. Симуляция не знает про
// клавиатуру: сюда стекается весь ввод.
func (g *GameState) pollInput() component.InputIntents {
	in := component.InputIntents{
		MoveForward: ebiten.IsKeyPressed(ebiten.KeyW),
		MoveBack:    ebiten.IsKeyPressed(ebiten.KeyS),
		MoveLeft:    ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight:   ebiten.IsKeyPressed(ebiten.KeyD),
		Sprint:      ebiten.IsKeyPressed(ebiten.KeyShift),
		Jump:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		FireHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		AimHeld:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Reload:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Melee:       inpututil.IsKeyJustPressed(ebiten.KeyV),
		SkillQ:      inpututil.IsKeyJustPressed(ebiten.KeyQ),
		SkillZ:      inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ShieldSkill: inpututil.IsKeyJustPressed(ebiten.KeyC),
	}

	x, y := ebiten.CursorPosition()
	if g.cursorInit {
		in.LookYaw = float64(x-g.lastCursorX) * mouseSensitivity
		in.LookPitch = float64(y-g.lastCursorY) * mouseSensitivity
	}
	g.lastCursorX, g.lastCursorY = x, y
	g.cursorInit = true

	return in
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.rt.Renderer.Draw(screen)
	g.rt.HUD.Draw(screen)

	switch g.rt.Game.Mode() {
	case component.ModeGameOver:
		g.drawOverlay(screen, "YOU DIED", "SPACE - menu")
	case component.ModeVictory:
		g.drawOverlay(screen, "ARENA CLEARED", "SPACE - menu")
	}
}

func (g *GameState) drawOverlay(screen *ebiten.Image, title, hint string) {
	cx := config.ScreenWidth / 2
	text.Draw(screen, title, g.rt.Face, cx-50, config.ScreenHeight/2-20, config.HUDTextColor)
	text.Draw(screen, hint, g.rt.Face, cx-50, config.ScreenHeight/2+16, config.MessageColor)
}

func (g *GameState) Exit() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
