// internal/app/game.go
package app

import (
	"log"
	"time"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/internal/intro"
	"go-arena-fps/internal/system"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

// introResult — ответ асинхронного запроса представления босса.
// Поле gen отсекает ответы, запущенные до перезапуска забега.
type introResult struct {
	gen   uint64
	level int
	intro intro.Intro
	err   error
}

// Game владеет состоянием симуляции и всеми системами. Один экземпляр
// живёт весь процесс; новый забег ре-инициализирует реестр на месте.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Scheduler       *Scheduler

	DamageSystem       *system.DamageSystem
	PlayerSystem       *system.PlayerSystem
	WaveSystem         *system.WaveSystem
	EnemySystem        *system.EnemySystem
	BossSystem         *system.BossSystem
	BulletSystem       *system.BulletSystem
	HazardSystem       *system.HazardSystem
	CollisionSystem    *system.CollisionSystem
	DroneSystem        *system.DroneSystem
	VisualEffectSystem *system.VisualEffectSystem

	introClient *intro.Client
	introCh     chan introResult
	introGen    uint64
	introKnown  bool        // Представление для текущего босса уже получено
	bossIntro   intro.Intro // Что показать и как назвать следующего босса

	messageSeq      uint64
	ngPlus          bool
	level           int
	lastBossPresent bool
}

// NewGame собирает симуляцию. introBaseURL может быть пустым — тогда
// представление боссов всегда берётся из детерминированного запасного
// варианта.
func NewGame(seed int64, introBaseURL string) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Scheduler:       NewScheduler(),
		introClient:     intro.NewClient(introBaseURL),
		introCh:         make(chan introResult, 4),
	}

	g.DamageSystem = system.NewDamageSystem(ecs, eventDispatcher, rng)
	g.PlayerSystem = system.NewPlayerSystem(ecs, rng, g.DamageSystem, g)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng, g)
	g.EnemySystem = system.NewEnemySystem(ecs)
	g.BossSystem = system.NewBossSystem(ecs, rng)
	g.BulletSystem = system.NewBulletSystem(ecs)
	g.HazardSystem = system.NewHazardSystem(ecs, g.DamageSystem)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.DamageSystem)
	g.DroneSystem = system.NewDroneSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	eventDispatcher.Subscribe(event.WaveCleared, g)
	eventDispatcher.Subscribe(event.BossDefeated, g)
	eventDispatcher.Subscribe(event.PlayerDied, g)

	return g
}

// IsNewGamePlus сообщает системам, действует ли режим New Game+.
func (g *Game) IsNewGamePlus() bool { return g.ngPlus }

func (g *Game) Mode() component.Mode { return g.ECS.Mode.Current }

// StartRun начинает забег с чистого состояния. Все отложенные вызовы
// прошлой сессии снимаются, ответы старых запросов представления
// игнорируются по номеру поколения.
func (g *Game) StartRun(newGamePlus bool) {
	g.Scheduler.CancelAll()
	g.introGen++
	g.introKnown = false
	g.ngPlus = newGamePlus
	g.level = 0
	g.lastBossPresent = false

	g.ECS.Reset()
	g.HazardSystem.Reset()
	g.spawnPlayer()
	g.setMode(component.ModePlaying)
	g.startNextWave(1)
}

// QuitToMenu синхронно сбрасывает симуляцию при выходе в меню из любого
// режима: реестр очищается, отложенное повествование снимается, поздние
// ответы сервиса представлений отсеются по номеру поколения.
func (g *Game) QuitToMenu() {
	g.Scheduler.CancelAll()
	g.introGen++
	g.introKnown = false
	g.ngPlus = false
	g.level = 0
	g.lastBossPresent = false

	g.ECS.Reset()
	g.HazardSystem.Reset()
	g.setMode(component.ModeStart)
}

func (g *Game) spawnPlayer() {
	id := g.ECS.NewEntity()
	g.ECS.PlayerID = id
	g.ECS.Positions[id] = &component.Position{Pos: vec.New(0, 0, 0)}
	g.ECS.Orientations[id] = &component.Orientation{}
	g.ECS.Player = &component.PlayerState{
		Health:         config.PlayerMaxHealth,
		MaxHealth:      config.PlayerMaxHealth,
		Stamina:        config.PlayerMaxStamina,
		MaxStamina:     config.PlayerMaxStamina,
		WeaponTier:     defs.WeaponTier1,
		AmmoInMagazine: defs.WeaponLibrary[defs.WeaponTier1].MagazineSize,
		ReserveAmmo:    config.StartingReserve,
		Grounded:       true,
		// Стартуем без остаточной неуязвимости и задержки выстрела
		LastShotTime: -10,
		LastHitTime:  -10,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Radius: config.PlayerRadius,
	}
}

// startNextWave готовит волну уровня и прокручивает повествование:
// сообщения показываются по одному с шагом MessageWindow, после
// последнего включается спавн и волна официально начинается.
func (g *Game) startNextWave(level int) {
	g.level = level
	messages := g.WaveSystem.StartWave(level)

	delay := time.Duration(0)
	window := time.Duration(config.MessageWindow * float64(time.Second))
	for _, text := range messages {
		msg := text
		g.Scheduler.After(delay, func() { g.showMessage(msg) })
		delay += window
	}
	g.Scheduler.After(delay, func() {
		g.WaveSystem.EnableSpawning()
		g.setMode(component.ModePlaying)
		g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: level})
	})
}

// OnEvent связывает фазы забега: волна → босс → следующая волна/победа.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCleared:
		g.beginBossSequence()
	case event.BossDefeated:
		g.afterBossDefeated()
	case event.PlayerDied:
		g.Scheduler.CancelAll()
		g.setMode(component.ModeGameOver)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// beginBossSequence переводит игру в перерыв, запускает асинхронный
// запрос представления и планирует появление босса. Симуляция никогда
// не ждёт сеть: запасное представление ставится сразу, удачный ответ
// лишь заменяет его, если успеет.
func (g *Game) beginBossSequence() {
	tier := g.level
	def := defs.BossLibrary[tier]

	g.setMode(component.ModeWaveTransition)
	g.bossIntro = intro.Fallback(def)
	g.introKnown = false
	g.showIntro()

	gen := g.introGen
	go func() {
		in, err := g.introClient.Fetch(tier, g.ngPlus)
		g.introCh <- introResult{gen: gen, level: tier, intro: in, err: err}
	}()

	g.Scheduler.After(time.Duration(config.BossIntroWindow*float64(time.Second)), func() {
		g.spawnBoss(tier)
	})
}

// pollIntro забирает готовые ответы сети в потоке тика.
func (g *Game) pollIntro() {
	for {
		select {
		case res := <-g.introCh:
			if res.gen != g.introGen || res.level != g.level {
				continue // Ответ прошлой сессии или прошлого босса
			}
			if res.err != nil {
				log.Printf("boss intro fetch failed, keeping fallback: %v", res.err)
				continue
			}
			g.bossIntro = res.intro
			g.introKnown = true
			if g.Mode() == component.ModeWaveTransition {
				g.showIntro()
			}
			if boss := g.ECS.Boss; boss != nil {
				boss.Name = res.intro.Name
				boss.IntroLine = res.intro.Line
			}
		default:
			return
		}
	}
}

func (g *Game) showIntro() {
	g.showMessage(g.bossIntro.Name + ": " + g.bossIntro.Line)
}

func (g *Game) spawnBoss(tier int) {
	def := defs.BossLibrary[tier]

	health := def.Health
	damage := def.Damage
	weakHealth := def.WeakPointHealth
	if g.ngPlus {
		health = int(float64(health) * config.NGPlusStatScale)
		damage = int(float64(damage) * config.NGPlusStatScale)
		weakHealth = int(float64(weakHealth) * config.NGPlusStatScale)
	}

	at := vec.New(0, def.Radius, -config.SpawnRingRadius*0.6)
	if pos, ok := g.ECS.Positions[g.ECS.PlayerID]; ok {
		orient := g.ECS.Orientations[g.ECS.PlayerID]
		at = pos.Pos.Add(vec.FromYaw(orient.Yaw).Scale(config.SpawnRingRadius * 0.6))
		at.Y = def.Radius
	}

	boss := &component.Boss{
		Tier:        tier,
		Name:        g.bossIntro.Name,
		IntroLine:   g.bossIntro.Line,
		Health:      health,
		MaxHealth:   health,
		Damage:      damage,
		Speed:       def.Speed,
		Radius:      def.Radius,
		Pos:         at,
		AttackTimer: def.AttackCooldown,
	}
	if weakHealth > 0 {
		boss.WeakPoint = &component.WeakPoint{
			Health:    weakHealth,
			MaxHealth: weakHealth,
			Pos:       at.Add(vec.New(config.WeakPointOrbit, 0, 0)),
			Radius:    config.WeakPointRadius,
		}
	}

	g.ECS.Boss = boss
	g.setMode(component.ModeBossFight)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: tier})
}

func (g *Game) afterBossDefeated() {
	if g.level >= config.MaxLevel {
		g.showMessage("The arena falls silent.")
		g.Scheduler.After(time.Duration(config.VictoryDelay*float64(time.Second)), func() {
			g.setMode(component.ModeVictory)
			g.EventDispatcher.Dispatch(event.Event{Type: event.Victory})
		})
		return
	}

	next := g.level + 1
	g.setMode(component.ModeWaveTransition)
	g.Scheduler.After(time.Duration(config.NextWaveDelay*float64(time.Second)), func() {
		g.setMode(component.ModePlaying)
		g.startNextWave(next)
	})
}

// TogglePause замораживает симуляцию, запоминая предыдущий режим.
// Пауза доступна только внутри активного забега.
func (g *Game) TogglePause() {
	mode := g.ECS.Mode
	switch mode.Current {
	case component.ModePaused:
		g.setMode(mode.BeforePause)
	case component.ModePlaying, component.ModeWaveTransition, component.ModeBossFight:
		mode.BeforePause = mode.Current
		g.setMode(component.ModePaused)
	}
}

func (g *Game) setMode(m component.Mode) {
	if g.ECS.Mode.Current == m {
		return
	}
	g.ECS.Mode.Current = m
	g.EventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: m})
}

func (g *Game) showMessage(text string) {
	g.messageSeq++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.MessageShown,
		Data: event.Message{ID: g.messageSeq, Text: text},
	})
}

// simActive сообщает, идёт ли боевая симуляция в текущем режиме.
func (g *Game) simActive() bool {
	switch g.Mode() {
	case component.ModePlaying, component.ModeWaveTransition, component.ModeBossFight:
		return true
	}
	return false
}

// Update продвигает симуляцию на один тик. Планировщик и сетевые ответы
// обслуживаются всегда, боевые системы — только в активных режимах.
func (g *Game) Update(deltaTime float64, in component.InputIntents) {
	g.Scheduler.Service()
	g.pollIntro()

	if !g.simActive() {
		return
	}
	g.ECS.GameTime += deltaTime

	g.PlayerSystem.Update(deltaTime, in)
	g.EnemySystem.Update(deltaTime)
	if g.Mode() == component.ModeBossFight {
		g.BossSystem.Update(deltaTime)
	}
	g.ensureDrone()
	g.DroneSystem.Update(deltaTime)
	g.BulletSystem.Update(deltaTime)
	g.HazardSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	if g.Mode() == component.ModePlaying {
		g.WaveSystem.Update(deltaTime)
	}
	g.VisualEffectSystem.Update(deltaTime)

	g.publishSnapshots()
}

// ensureDrone создаёт дрона, как только разблокировка вступила в силу.
func (g *Game) ensureDrone() {
	player := g.ECS.Player
	if player == nil || !player.DroneUnlocked || g.ECS.Drone != nil {
		return
	}
	at := vec.New(0, config.DroneOffsetUp, 0)
	if pos, ok := g.ECS.Positions[g.ECS.PlayerID]; ok {
		at = pos.Pos.Add(vec.New(0, config.DroneOffsetUp, 0))
	}
	g.ECS.Drone = &component.Drone{Pos: at}
}

// publishSnapshots рассылает снимки состояния для слоя представления.
func (g *Game) publishSnapshots() {
	player := g.ECS.Player
	if player != nil {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PlayerStatsUpdated,
			Data: event.PlayerStatsSnapshot{
				Health:         player.Health,
				MaxHealth:      player.MaxHealth,
				Stamina:        player.Stamina,
				MaxStamina:     player.MaxStamina,
				WeaponTier:     player.WeaponTier,
				AmmoInMagazine: player.AmmoInMagazine,
				ReserveAmmo:    player.ReserveAmmo,
				Reloading:      player.Reloading,
				Aiming:         player.Aiming,
				SkillQUnlocked: player.SkillQ.Unlocked,
				SkillQCooldown: player.SkillQ.Cooldown,
				SkillZUnlocked: player.SkillZ.Unlocked,
				SkillZCooldown: player.SkillZ.Cooldown,
				Overcharged:    player.SkillZ.Active,
				ShieldUnlocked: player.Shield.Unlocked,
				ShieldCooldown: player.Shield.Cooldown,
				ShieldActive:   player.Shield.Active,
				MeleeCooldown:  player.Melee.Cooldown,
				DroneUnlocked:  player.DroneUnlocked,
			},
		})
	}

	boss := g.ECS.Boss
	if boss != nil {
		snapshot := event.BossSnapshot{
			Present:   true,
			Name:      boss.Name,
			Health:    boss.Health,
			MaxHealth: boss.MaxHealth,
			Final:     boss.WeakPoint != nil,
		}
		if boss.WeakPoint != nil {
			snapshot.WeakHP = boss.WeakPoint.Health
			snapshot.WeakMaxHP = boss.WeakPoint.MaxHealth
		}
		g.EventDispatcher.Dispatch(event.Event{Type: event.BossStatusUpdated, Data: snapshot})
		g.lastBossPresent = true
	} else if g.lastBossPresent {
		// Один снимок с Present=false при исчезновении босса
		g.EventDispatcher.Dispatch(event.Event{Type: event.BossStatusUpdated, Data: event.BossSnapshot{}})
		g.lastBossPresent = false
	}
}
