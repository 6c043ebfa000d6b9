package app

import (
	"testing"
	"time"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/event"
)

// recorder накапливает события для проверок.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *time.Time) {
	t.Helper()
	g := NewGame(42, "")
	now := time.Unix(5000, 0)
	g.Scheduler.now = func() time.Time { return now }
	return g, &now
}

func advance(g *Game, now *time.Time, d time.Duration) {
	*now = now.Add(d)
	g.Update(0.016, component.InputIntents{})
}

func TestStartRunSpawnsPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartRun(false)

	if g.Mode() != component.ModePlaying {
		t.Fatalf("mode = %v, want playing", g.Mode())
	}
	player := g.ECS.Player
	if player == nil {
		t.Fatal("player not spawned")
	}
	if player.Health != config.PlayerMaxHealth {
		t.Errorf("health = %d", player.Health)
	}
	if player.AmmoInMagazine != 30 || player.ReserveAmmo != config.StartingReserve {
		t.Errorf("ammo = %d/%d, want 30/%d",
			player.AmmoInMagazine, player.ReserveAmmo, config.StartingReserve)
	}
	if player.SkillQ.Unlocked || player.Shield.Unlocked || player.DroneUnlocked {
		t.Error("skills unlocked before their waves")
	}
}

func TestWaveBeginsAfterNarration(t *testing.T) {
	g, now := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.WaveStarted, rec)

	g.StartRun(false)
	g.Update(0.016, component.InputIntents{})
	if g.ECS.Wave == nil {
		t.Fatal("wave not prepared")
	}
	if g.ECS.Wave.SpawnEnabled {
		t.Fatal("spawning enabled before narration finished")
	}

	advance(g, now, time.Duration(config.MessageWindow*float64(time.Second))+100*time.Millisecond)
	if !g.ECS.Wave.SpawnEnabled {
		t.Fatal("spawning not enabled after narration window")
	}
	if rec.count(event.WaveStarted) != 1 {
		t.Fatalf("WaveStarted count = %d", rec.count(event.WaveStarted))
	}
}

func TestWaveClearedLeadsToBoss(t *testing.T) {
	g, now := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.MessageShown, rec)
	g.EventDispatcher.Subscribe(event.BossSpawned, rec)

	g.StartRun(false)
	advance(g, now, 3*time.Second)

	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})
	if g.Mode() != component.ModeWaveTransition {
		t.Fatalf("mode = %v, want wave_transition", g.Mode())
	}
	if rec.count(event.MessageShown) == 0 {
		t.Fatal("no intro message shown")
	}

	advance(g, now, time.Duration(config.BossIntroWindow*float64(time.Second))+100*time.Millisecond)
	if g.ECS.Boss == nil {
		t.Fatal("boss not spawned after intro window")
	}
	if g.Mode() != component.ModeBossFight {
		t.Fatalf("mode = %v, want boss_fight", g.Mode())
	}
	if g.ECS.Boss.Tier != 1 {
		t.Errorf("boss tier = %d", g.ECS.Boss.Tier)
	}
	if g.ECS.Boss.Name == "" || g.ECS.Boss.IntroLine == "" {
		t.Error("boss missing fallback intro")
	}
}

func TestBossDefeatedAdvancesToNextWave(t *testing.T) {
	g, now := newTestGame(t)
	g.StartRun(false)
	advance(g, now, 3*time.Second)

	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})
	advance(g, now, 4*time.Second)
	if g.ECS.Boss == nil {
		t.Fatal("boss not spawned")
	}

	g.ECS.Boss = nil
	g.EventDispatcher.Dispatch(event.Event{Type: event.BossDefeated})
	if g.Mode() != component.ModeWaveTransition {
		t.Fatalf("mode = %v after boss death", g.Mode())
	}

	advance(g, now, time.Duration(config.NextWaveDelay*float64(time.Second))+100*time.Millisecond)
	if g.ECS.Wave == nil || g.ECS.Wave.Level != 2 {
		t.Fatalf("next wave not started")
	}
}

func TestFinalBossDefeatedEndsInVictory(t *testing.T) {
	g, now := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.Victory, rec)

	g.StartRun(false)
	advance(g, now, 3*time.Second)
	g.level = config.MaxLevel

	g.EventDispatcher.Dispatch(event.Event{Type: event.BossDefeated})
	advance(g, now, time.Duration(config.VictoryDelay*float64(time.Second))+100*time.Millisecond)

	if g.Mode() != component.ModeVictory {
		t.Fatalf("mode = %v, want victory", g.Mode())
	}
	if rec.count(event.Victory) != 1 {
		t.Fatalf("Victory count = %d", rec.count(event.Victory))
	}
}

func TestPlayerDeathCancelsPendingNarration(t *testing.T) {
	g, now := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.MessageShown, rec)
	g.EventDispatcher.Subscribe(event.GameOver, rec)

	g.StartRun(false)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})
	shown := rec.count(event.MessageShown)

	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	if g.Mode() != component.ModeGameOver {
		t.Fatalf("mode = %v, want game_over", g.Mode())
	}
	if rec.count(event.GameOver) != 1 {
		t.Fatal("GameOver not dispatched")
	}

	// Запланированное появление босса снято вместе с повествованием.
	advance(g, now, 30*time.Second)
	if g.ECS.Boss != nil {
		t.Fatal("boss spawned after game over")
	}
	if rec.count(event.MessageShown) != shown {
		t.Fatal("stale narration fired after game over")
	}
}

func TestRestartCancelsPreviousRun(t *testing.T) {
	g, now := newTestGame(t)
	g.StartRun(false)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})

	g.StartRun(true)
	if !g.IsNewGamePlus() {
		t.Fatal("NG+ flag not set")
	}
	if g.ECS.Wave == nil || g.ECS.Wave.Level != 1 {
		t.Fatal("fresh wave not prepared")
	}

	// Босс первого забега не должен появиться во втором.
	advance(g, now, 30*time.Second)
	if g.ECS.Boss != nil {
		t.Fatal("stale boss sequence leaked into new run")
	}
	if g.Mode() != component.ModePlaying {
		t.Fatalf("mode = %v, want playing", g.Mode())
	}
}

func TestTogglePauseRestoresPriorMode(t *testing.T) {
	g, _ := newTestGame(t)
	g.StartRun(false)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})

	g.TogglePause()
	if g.Mode() != component.ModePaused {
		t.Fatalf("mode = %v, want paused", g.Mode())
	}

	before := g.ECS.GameTime
	g.Update(0.016, component.InputIntents{})
	if g.ECS.GameTime != before {
		t.Fatal("game time advanced while paused")
	}

	g.TogglePause()
	if g.Mode() != component.ModeWaveTransition {
		t.Fatalf("mode = %v, want wave_transition restored", g.Mode())
	}
}

func TestQuitToMenuResetsSynchronously(t *testing.T) {
	g, now := newTestGame(t)
	g.StartRun(false)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})

	g.QuitToMenu()
	if g.Mode() != component.ModeStart {
		t.Fatalf("mode = %v, want start_screen", g.Mode())
	}
	if g.ECS.Player != nil || g.ECS.Boss != nil || len(g.ECS.Enemies) != 0 {
		t.Fatal("registry not cleared on quit")
	}

	// Отложенный спавн босса прошлого забега снят вместе с остальным
	// повествованием.
	advance(g, now, 30*time.Second)
	if g.ECS.Boss != nil {
		t.Fatal("stale boss sequence fired after quit")
	}
	if g.Mode() != component.ModeStart {
		t.Fatalf("mode = %v after idle, want start_screen", g.Mode())
	}
}

func TestNewGamePlusStartsWithSkillsUnlocked(t *testing.T) {
	g, _ := newTestGame(t)

	g.StartRun(false)
	player := g.ECS.Player
	if player.SkillQ.Unlocked || player.SkillZ.Unlocked {
		t.Fatal("normal run started with skills unlocked")
	}

	g.StartRun(true)
	player = g.ECS.Player
	if !player.SkillQ.Unlocked || !player.SkillZ.Unlocked {
		t.Fatalf("NG+ run started with skills locked: Q=%v Z=%v",
			player.SkillQ.Unlocked, player.SkillZ.Unlocked)
	}
}

func TestNewGamePlusScalesBoss(t *testing.T) {
	g, now := newTestGame(t)
	g.StartRun(true)
	advance(g, now, 3*time.Second)

	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})
	advance(g, now, 4*time.Second)

	boss := g.ECS.Boss
	if boss == nil {
		t.Fatal("boss not spawned")
	}
	if boss.MaxHealth != 900 { // 600 * 1.5
		t.Errorf("boss health = %d, want 900", boss.MaxHealth)
	}
}
