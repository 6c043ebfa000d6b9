// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	game "go-arena-fps/internal/app"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/state"
	"go-arena-fps/internal/ui"
	"go-arena-fps/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "путь к YAML с переопределением таблиц (опционально)")
	introURL := flag.String("intro-url", os.Getenv("BOSS_INTRO_URL"), "базовый URL сервиса представления боссов")
	seed := flag.Int64("seed", 0, "сид генератора, 0 — от времени")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if *defsPath != "" {
		if err := defs.LoadDefinitions(*defsPath); err != nil {
			log.Fatalf("load definitions: %v", err)
		}
	}

	face, err := ui.LoadFontFace(18)
	if err != nil {
		log.Fatal(err)
	}

	sim := game.NewGame(*seed, *introURL)
	rt := &state.Runtime{
		Game:     sim,
		HUD:      ui.NewHUD(face, sim.EventDispatcher),
		Renderer: render.NewSceneRenderer(sim.ECS, sim.EventDispatcher, sim.Rng),
		Face:     face,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, rt))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
