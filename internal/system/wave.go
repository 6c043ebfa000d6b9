// internal/system/wave.go
package system

import (
	"fmt"
	"math"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

// WaveGameContext определяет, что WaveSystem требует от Game.
type WaveGameContext interface {
	IsNewGamePlus() bool
}

// WaveSystem решает, какого врага и когда спавнить, ведёт счёт убийств и
// объявляет волну зачищенной, когда квота выполнена и живых врагов нет.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	game            WaveGameContext
	cleared         bool
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, game WaveGameContext) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		game:            game,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	return ws
}

// StartWave создаёт волну следующего уровня, применяет одноразовые
// разблокировки и возвращает тексты повествования, которые нужно показать
// до официального начала волны. Спавн остаётся выключенным, пока
// повествование не закончится.
func (s *WaveSystem) StartWave(level int) []string {
	s.cleared = false

	baseInterval := config.BaseSpawnInterval
	maxConcurrent := config.MaxConcurrent
	if s.game.IsNewGamePlus() {
		baseInterval = config.NGPlusSpawnInterval
		maxConcurrent = config.NGPlusMaxConcurrent
	}

	s.ecs.Wave = &component.Wave{
		Level:         level,
		TotalToKill:   config.WaveKillBase + level*config.WaveKillPerLevel,
		SpawnInterval: math.Max(config.MinSpawnInterval, baseInterval-float64(level)*config.SpawnIntervalStep),
		MaxConcurrent: maxConcurrent,
	}

	messages := s.applyUnlocks(level)
	messages = append(messages, fmt.Sprintf("Wave %d", level))
	return messages
}

// applyUnlocks выполняет одноразовые разблокировки на фиксированных
// уровнях и возвращает сообщения о них.
func (s *WaveSystem) applyUnlocks(level int) []string {
	player := s.ecs.Player
	if player == nil {
		return nil
	}

	// В New Game+ навыки доступны с самого первого уровня.
	skillsWave := config.SkillsUnlockWave
	if s.game.IsNewGamePlus() {
		skillsWave = 1
	}

	var messages []string
	if level >= skillsWave && !player.SkillQ.Unlocked {
		player.SkillQ.Unlocked = true
		player.SkillZ.Unlocked = true
		messages = append(messages, "Skills unlocked: heal [Q], overcharge [Z]")
	}
	if level >= config.ShieldUnlockWave && !player.Shield.Unlocked {
		player.Shield.Unlocked = true
		messages = append(messages, "Shield unlocked [C]")
	}
	if level >= config.WeaponUnlockWave && !player.Tier2Unlocked {
		player.Tier2Unlocked = true
		player.WeaponTier = defs.WeaponTier2
		player.AmmoInMagazine = defs.WeaponLibrary[defs.WeaponTier2].MagazineSize
		messages = append(messages, "Weapon upgraded: "+defs.WeaponLibrary[defs.WeaponTier2].Name)
	}
	if level >= config.DroneUnlockWave && !player.DroneUnlocked {
		player.DroneUnlocked = true
		messages = append(messages, "Drone companion online")
	}
	return messages
}

// EnableSpawning официально начинает волну: включает спавн после того,
// как истекло окно последнего сообщения.
func (s *WaveSystem) EnableSpawning() {
	if s.ecs.Wave != nil {
		s.ecs.Wave.SpawnEnabled = true
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || !wave.SpawnEnabled {
		return
	}

	if wave.Spawned < wave.TotalToKill && s.ecs.AliveEnemies() < wave.MaxConcurrent {
		wave.SpawnTimer -= deltaTime
		if wave.SpawnTimer <= 0 {
			s.spawnEnemy(wave)
			wave.SpawnTimer = wave.SpawnInterval
		}
	}

	if !s.cleared && wave.Killed >= wave.TotalToKill && s.ecs.AliveEnemies() == 0 {
		s.cleared = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared})
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	table := defs.SpawnTableFor(wave.Level)
	weights := make([]int, len(table))
	for i, entry := range table {
		weights[i] = entry.Weight
	}
	idx := s.rng.ChooseWeighted(weights)
	if idx < 0 {
		return
	}
	def := defs.EnemyLibrary[table[idx].Kind]

	scale := 1.0
	if s.game.IsNewGamePlus() {
		scale = config.NGPlusStatScale
	}

	// Точка спавна — на кольце вокруг игрока, случайный азимут.
	center := vec.Vec3{}
	if playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]; ok {
		center = playerPos.Pos.Flat()
	}
	angle := s.rng.Float64() * 2 * math.Pi
	at := center.Add(vec.New(
		math.Cos(angle)*config.SpawnRingRadius,
		def.Altitude,
		math.Sin(angle)*config.SpawnRingRadius,
	))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Pos: at}
	s.ecs.Orientations[id] = &component.Orientation{}
	s.ecs.Healths[id] = &component.Health{
		Value: int(float64(def.Health) * scale),
		Max:   int(float64(def.Health) * scale),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Kind:       def.Kind,
		Damage:     int(float64(def.Damage) * scale),
		Speed:      def.Speed,
		Radius:     def.Radius,
		Altitude:   def.Altitude,
		DropChance: def.DropChance,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: def.Color, Radius: def.Radius}

	wave.Spawned++
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStatusUpdated, Data: event.WaveSnapshot{
		Level: wave.Level, Killed: wave.Killed, Total: wave.TotalToKill,
	}})
}

// OnEvent ведёт счёт убийств текущей волны.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	wave.Killed++
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStatusUpdated, Data: event.WaveSnapshot{
		Level: wave.Level, Killed: wave.Killed, Total: wave.TotalToKill,
	}})
}
