package system

import (
	"testing"

	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/internal/utils"
)

func newWaveFixture(ngPlus bool) (*entity.ECS, *WaveSystem, *event.Dispatcher, *eventRecorder) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.WaveCleared, rec)
	ws := NewWaveSystem(ecs, dispatcher, utils.NewPRNGService(11), &fakeGameContext{ngPlus: ngPlus})
	addPlayer(ecs)
	return ecs, ws, dispatcher, rec
}

func TestWaveQuotaLaw(t *testing.T) {
	for level := 1; level <= 5; level++ {
		_, ws, _, _ := newWaveFixture(false)
		ws.StartWave(level)
		want := config.WaveKillBase + level*config.WaveKillPerLevel
		if got := ws.ecs.Wave.TotalToKill; got != want {
			t.Errorf("level %d: quota = %d, want %d", level, got, want)
		}
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	_, ws, _, _ := newWaveFixture(false)
	ws.StartWave(5)
	if got := ws.ecs.Wave.SpawnInterval; got != 1.0 {
		t.Errorf("level 5 interval = %v, want 1.0", got)
	}

	_, wsPlus, _, _ := newWaveFixture(true)
	wsPlus.StartWave(5)
	if got := wsPlus.ecs.Wave.SpawnInterval; got != config.MinSpawnInterval {
		t.Errorf("NG+ level 5 interval = %v, want %v", got, float64(config.MinSpawnInterval))
	}
}

func TestSpawningWaitsForEnable(t *testing.T) {
	ecs, ws, _, _ := newWaveFixture(false)
	ws.StartWave(1)

	for i := 0; i < 100; i++ {
		ws.Update(0.1)
	}
	if len(ecs.Enemies) != 0 {
		t.Fatal("enemies spawned before the wave officially began")
	}

	ws.EnableSpawning()
	for i := 0; i < 100; i++ {
		ws.Update(0.1)
	}
	if len(ecs.Enemies) == 0 {
		t.Fatal("no enemies after spawning enabled")
	}
}

func TestSpawnStopsAtQuotaAndConcurrencyCap(t *testing.T) {
	ecs, ws, _, _ := newWaveFixture(false)
	ws.StartWave(5)
	ws.EnableSpawning()

	for i := 0; i < 10000; i++ {
		ws.Update(0.1)
	}
	// Никто не умирает, значит спавн упирается в потолок одновременных.
	if len(ecs.Enemies) != config.MaxConcurrent {
		t.Fatalf("alive = %d, want cap %d", len(ecs.Enemies), config.MaxConcurrent)
	}
	if ecs.Wave.Spawned != config.MaxConcurrent {
		t.Fatalf("spawned = %d past the concurrency cap", ecs.Wave.Spawned)
	}
}

func TestWaveClearedRequiresQuotaAndEmptyField(t *testing.T) {
	ecs, ws, _, rec := newWaveFixture(false)
	ws.StartWave(1)
	ws.EnableSpawning()
	wave := ecs.Wave

	// Квота выполнена, но на поле ещё есть враг.
	wave.Killed = wave.TotalToKill
	wave.Spawned = wave.TotalToKill
	straggler := addEnemy(ecs, ecs.Positions[ecs.PlayerID].Pos, 10, 0)

	ws.Update(0.016)
	if rec.count(event.WaveCleared) != 0 {
		t.Fatal("wave cleared with enemies on the field")
	}

	ecs.RemoveEntity(straggler)
	ws.Update(0.016)
	ws.Update(0.016)
	if rec.count(event.WaveCleared) != 1 {
		t.Fatalf("WaveCleared count = %d, want exactly 1", rec.count(event.WaveCleared))
	}
}

func TestKillCounterTracksEnemyKilledEvents(t *testing.T) {
	ecs, ws, dispatcher, _ := newWaveFixture(false)
	ws.StartWave(1)

	// Конструктор уже подписал систему на события убийств.
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KilledInfo{}})
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KilledInfo{}})
	if ecs.Wave.Killed != 2 {
		t.Fatalf("killed = %d, want 2", ecs.Wave.Killed)
	}
}

func TestUnlockScheduleByWave(t *testing.T) {
	ecs, ws, _, _ := newWaveFixture(false)
	player := ecs.Player

	ws.StartWave(1)
	if player.SkillQ.Unlocked || player.Shield.Unlocked || player.Tier2Unlocked || player.DroneUnlocked {
		t.Fatal("unlocks granted on wave 1")
	}

	ws.StartWave(2)
	if !player.SkillQ.Unlocked || !player.SkillZ.Unlocked {
		t.Fatal("skills not unlocked on wave 2")
	}

	ws.StartWave(3)
	if !player.Shield.Unlocked || !player.Tier2Unlocked {
		t.Fatal("shield and weapon not unlocked on wave 3")
	}
	if player.WeaponTier != defs.WeaponTier2 {
		t.Fatalf("weapon tier = %v", player.WeaponTier)
	}

	ws.StartWave(4)
	if !player.DroneUnlocked {
		t.Fatal("drone not unlocked on wave 4")
	}
}

func TestNewGamePlusUnlocksSkillsAtWaveOne(t *testing.T) {
	ecs, ws, _, _ := newWaveFixture(true)
	player := ecs.Player

	ws.StartWave(1)
	if !player.SkillQ.Unlocked || !player.SkillZ.Unlocked {
		t.Fatal("skills locked on NG+ wave 1")
	}
	// Остальное расписание разблокировок NG+ не трогает.
	if player.Shield.Unlocked || player.Tier2Unlocked || player.DroneUnlocked {
		t.Fatal("NG+ granted non-skill unlocks on wave 1")
	}
}

func TestUnlockMessagesOnlyOnce(t *testing.T) {
	_, ws, _, _ := newWaveFixture(false)

	first := ws.StartWave(2)
	again := ws.StartWave(2)
	if len(first) <= len(again) {
		t.Fatalf("unlock messages repeated: first %d, again %d", len(first), len(again))
	}
}

func TestNewGamePlusScalesEnemies(t *testing.T) {
	ecs, ws, _, _ := newWaveFixture(true)
	ws.StartWave(1)
	ws.EnableSpawning()
	for i := 0; i < 50 && len(ecs.Enemies) == 0; i++ {
		ws.Update(0.5)
	}
	if len(ecs.Enemies) == 0 {
		t.Fatal("nothing spawned")
	}

	for id, enemy := range ecs.Enemies {
		base := defs.EnemyLibrary[enemy.Kind]
		wantHP := int(float64(base.Health) * config.NGPlusStatScale)
		if ecs.Healths[id].Value != wantHP {
			t.Errorf("%v hp = %d, want %d", enemy.Kind, ecs.Healths[id].Value, wantHP)
		}
		if enemy.Damage != int(float64(base.Damage)*config.NGPlusStatScale) {
			t.Errorf("%v damage not scaled", enemy.Kind)
		}
	}
}
