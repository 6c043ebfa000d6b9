// internal/system/damage.go
package system

import (
	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/internal/types"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

// Target — полиморфная поражаемая цель: либо враг по идентификатору, либо
// босс (опционально его уязвимая точка). Единая точка входа избавляет код
// столкновений от ветвления между врагами и боссом.
type Target struct {
	EnemyID   types.EntityID
	IsBoss    bool
	WeakPoint bool
}

// EnemyTarget строит цель-врага.
func EnemyTarget(id types.EntityID) Target {
	return Target{EnemyID: id}
}

// BossTarget строит цель-босса. weakPoint=true означает попадание именно
// в уязвимую точку.
func BossTarget(weakPoint bool) Target {
	return Target{IsBoss: true, WeakPoint: weakPoint}
}

// DamageSystem применяет урон, взрывы по области, поглощение щитом и
// переходы через летальный порог. Смерть обрабатывается не больше одного
// раза: сущность удаляется из реестра в тот же момент, когда hp ≤ 0, и
// повторные попадания в том же тике промахиваются мимо реестра.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// Apply наносит урон цели. Попадания в уже удалённые сущности — no-op.
func (s *DamageSystem) Apply(target Target, damage int) {
	if target.IsBoss {
		s.damageBoss(damage, target.WeakPoint)
		return
	}
	s.damageEnemy(target.EnemyID, damage)
}

func (s *DamageSystem) damageEnemy(id types.EntityID, damage int) {
	health, hasHealth := s.ecs.Healths[id]
	if _, isEnemy := s.ecs.Enemies[id]; !isEnemy || !hasHealth {
		return
	}

	health.Value -= damage
	s.ecs.DamageFlashes[id] = &component.DamageFlash{
		Timer:    0,
		Duration: 0.15,
	}
	if health.Value <= 0 {
		s.killEnemy(id)
	}
}

// killEnemy обрабатывает смерть врага ровно один раз: сущность удаляется
// из реестра до любых побочных эффектов, затем выполняется бросок добычи
// и рассылается событие убийства.
func (s *DamageSystem) killEnemy(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	pos := s.ecs.Positions[id]
	if enemy == nil || pos == nil {
		return
	}
	kind := enemy.Kind
	dropChance := enemy.DropChance
	at := pos.Pos

	s.ecs.RemoveEntity(id)

	s.rollLoot(at, dropChance)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.KilledInfo{Kind: kind, Pos: at},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ExplosionCued,
		Data: event.ExplosionCueData{
			Pos:       at,
			Core:      defs.EnemyLibrary[kind].Color,
			Spark:     config.WeakPointColor,
			Particles: config.ExplosionParticles,
		},
	})
}

// rollLoot выполняет взвешенный бросок добычи, ограниченный шансом
// выпадения конкретного вида врага.
func (s *DamageSystem) rollLoot(at vec.Vec3, dropChance float64) {
	if s.rng.Float64() >= dropChance {
		return
	}
	weights := make([]int, len(defs.LootTable))
	for i, entry := range defs.LootTable {
		weights[i] = entry.Weight
	}
	idx := s.rng.ChooseWeighted(weights)
	if idx < 0 {
		return
	}

	id := s.ecs.NewEntity()
	kind := defs.LootTable[idx].Kind
	s.ecs.Positions[id] = &component.Position{Pos: vec.New(at.X, 0, at.Z)}
	s.ecs.Pickups[id] = &component.Pickup{Kind: kind}
	pickupColor := config.AmmoPickupColor
	if kind == defs.PickupHealth {
		pickupColor = config.HealthPickupColor
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: pickupColor, Radius: 0.5}
}

func (s *DamageSystem) damageBoss(damage int, weakPoint bool) {
	boss := s.ecs.Boss
	if boss == nil {
		return
	}

	if boss.WeakPoint != nil {
		// Тело финального босса неуязвимо: урон проходит только через
		// уязвимую точку.
		if !weakPoint {
			return
		}
		boss.WeakPoint.Health -= damage
		if boss.WeakPoint.Health <= 0 {
			boss.WeakPoint.Health = 0
			boss.Health = 0
			s.killBoss()
			return
		}
		// Урон транзитивно уменьшает и здоровье босса, но тело не
		// умирает раньше точки.
		boss.Health -= damage
		if boss.Health < 1 {
			boss.Health = 1
		}
		return
	}

	boss.Health -= damage
	if boss.Health <= 0 {
		boss.Health = 0
		s.killBoss()
	}
}

// killBoss снимает босса с поля и в том же тике зачищает все его снаряды
// и активные зоны поражения, чтобы они не могли ранить игрока посмертно.
func (s *DamageSystem) killBoss() {
	boss := s.ecs.Boss
	if boss == nil {
		return
	}
	at := boss.Pos
	s.ecs.Boss = nil

	for id := range s.ecs.BossBullets {
		s.ecs.RemoveEntity(id)
	}
	for id := range s.ecs.Hazards {
		s.ecs.RemoveEntity(id)
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ExplosionCued,
		Data: event.ExplosionCueData{
			Pos:       at,
			Core:      config.BossBarColor,
			Spark:     config.WeakPointColor,
			Particles: config.ExplosionParticles * 3,
		},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ScreenShake,
		Data: event.ScreenShakeCue{Intensity: config.ShakeOnExplosion, Duration: 0.6},
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated})
}

// DamagePlayer наносит урон игроку. contact=true включает окно
// неуязвимости после последнего контактного попадания. Активный щит
// полностью гасит урон, но окно обратной связи всё равно перезапускается.
func (s *DamageSystem) DamagePlayer(damage int, contact bool) {
	player := s.ecs.Player
	if player == nil || player.Health <= 0 {
		return
	}
	if contact && s.ecs.GameTime-player.LastHitTime < config.HitImmunityWindow {
		return
	}

	player.LastHitTime = s.ecs.GameTime
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ScreenShake,
		Data: event.ScreenShakeCue{Intensity: config.ShakeOnHit, Duration: 0.25},
	})

	if player.Shield.Active {
		return
	}

	player.Health -= damage
	if player.Health <= 0 {
		player.Health = 0
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// Explode применяет взрыв по области: все враги в радиусе получают урон,
// босс (или его уязвимая точка) — если оказался в пределах радиуса.
// Запрос считается от расстояния, а не от порядка обхода.
func (s *DamageSystem) Explode(center vec.Vec3, damage int, radius float64) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ExplosionCued,
		Data: event.ExplosionCueData{
			Pos:       center,
			Core:      config.HealthBarColor,
			Spark:     config.AmmoPickupColor,
			Particles: config.ExplosionParticles,
		},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ScreenShake,
		Data: event.ScreenShakeCue{Intensity: config.ShakeOnExplosion, Duration: 0.3},
	})

	hit := make([]types.EntityID, 0, 8)
	for id, enemy := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if vec.Dist(center, pos.Pos) <= radius+enemy.Radius {
			hit = append(hit, id)
		}
	}
	for _, id := range hit {
		s.damageEnemy(id, damage)
	}

	if boss := s.ecs.Boss; boss != nil {
		if boss.WeakPoint != nil {
			if vec.Dist(center, boss.WeakPoint.Pos) <= radius+boss.WeakPoint.Radius {
				s.damageBoss(damage, true)
			}
		} else if vec.Dist(center, boss.Pos) <= radius+boss.Radius {
			s.damageBoss(damage, false)
		}
	}
}
