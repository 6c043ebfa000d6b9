// internal/system/collision.go
package system

import (
	"math"

	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/types"
	"go-arena-fps/pkg/vec"
)

// CollisionSystem выполняет проверки близости между снарядами, игроком,
// врагами, боссом и предметами. Порядок разрешения фиксирован: снаряды
// игрока → враги, затем → босс; снаряды дрона; снаряды босса → игрок;
// контакт врагов и босса с игроком; предметы. Каждое попадание немедленно
// передаётся модели урона.
type CollisionSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewCollisionSystem(ecs *entity.ECS, damage *DamageSystem) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, damage: damage}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.playerBulletsVsEnemies()
	s.playerBulletsVsBoss()
	s.droneBullets()
	s.bossBulletsVsPlayer()
	s.contactDamage()
	s.pickupsVsPlayer()
}

// bulletHits проверяет попадание снаряда в цель. Лазерные снаряды
// используют вытянутый отрезок позади текущей позиции вместо точечного
// теста.
func bulletHits(pos, vel, target vec.Vec3, targetRadius float64, laser bool) bool {
	reach := config.BulletHitRadius + targetRadius
	if laser {
		tail := pos.Sub(vel.Normalized().Scale(config.LaserLength))
		return vec.SegmentDist(target, tail, pos) <= reach
	}
	return vec.Dist(pos, target) <= reach
}

func (s *CollisionSystem) playerBulletsVsEnemies() {
	var destroyed []types.EntityID

	for bulletID, bullet := range s.ecs.PlayerBullets {
		bulletPos, ok := s.ecs.Positions[bulletID]
		if !ok {
			continue
		}

		for enemyID, enemy := range s.ecs.Enemies {
			enemyPos, hasPos := s.ecs.Positions[enemyID]
			if !hasPos {
				continue
			}
			if !bulletHits(bulletPos.Pos, bullet.Vel, enemyPos.Pos, enemy.Radius, bullet.IsLaser) {
				continue
			}

			if bullet.IsExplosive {
				// Взрывное попадание превращается во взрыв по области.
				s.damage.Explode(enemyPos.Pos, bullet.Damage, config.ExplosionRadius)
				destroyed = append(destroyed, bulletID)
				break
			}

			s.damage.Apply(EnemyTarget(enemyID), bullet.Damage)
			if !bullet.IsLaser {
				// Обычный снаряд уничтожается первым попаданием; лазер
				// проходит насквозь и может бить из кадра в кадр.
				destroyed = append(destroyed, bulletID)
				break
			}
		}
	}

	for _, id := range destroyed {
		s.ecs.RemoveEntity(id)
	}
}

func (s *CollisionSystem) playerBulletsVsBoss() {
	boss := s.ecs.Boss
	if boss == nil {
		return
	}

	var destroyed []types.EntityID
	for bulletID, bullet := range s.ecs.PlayerBullets {
		bulletPos, ok := s.ecs.Positions[bulletID]
		if !ok {
			continue
		}

		target, hit := s.bossHit(bulletPos.Pos, bullet.Vel, bullet.IsLaser)
		if !hit {
			continue
		}

		if bullet.IsExplosive {
			s.damage.Explode(bulletPos.Pos, bullet.Damage, config.ExplosionRadius)
			destroyed = append(destroyed, bulletID)
			continue
		}
		s.damage.Apply(target, bullet.Damage)
		if !bullet.IsLaser {
			destroyed = append(destroyed, bulletID)
		}
		if s.ecs.Boss == nil {
			break // Босс погиб, его снарядов больше нет
		}
	}

	for _, id := range destroyed {
		s.ecs.RemoveEntity(id)
	}
}

// bossHit определяет, во что попал снаряд: в уязвимую точку или в тело.
// Для финального яруса тело тоже возвращается как цель — модель урона
// сама превратит такое попадание в no-op.
func (s *CollisionSystem) bossHit(pos, vel vec.Vec3, laser bool) (Target, bool) {
	boss := s.ecs.Boss
	if boss == nil {
		return Target{}, false
	}
	if boss.WeakPoint != nil && bulletHits(pos, vel, boss.WeakPoint.Pos, boss.WeakPoint.Radius, laser) {
		return BossTarget(true), true
	}
	if bulletHits(pos, vel, boss.Pos, boss.Radius, laser) {
		return BossTarget(false), true
	}
	return Target{}, false
}

func (s *CollisionSystem) droneBullets() {
	var destroyed []types.EntityID

	for bulletID, bullet := range s.ecs.DroneBullets {
		bulletPos, ok := s.ecs.Positions[bulletID]
		if !ok {
			continue
		}

		hit := false
		for enemyID, enemy := range s.ecs.Enemies {
			enemyPos, hasPos := s.ecs.Positions[enemyID]
			if !hasPos {
				continue
			}
			if bulletHits(bulletPos.Pos, bullet.Vel, enemyPos.Pos, enemy.Radius, false) {
				s.damage.Apply(EnemyTarget(enemyID), bullet.Damage)
				hit = true
				break
			}
		}
		if !hit {
			if target, ok := s.bossHit(bulletPos.Pos, bullet.Vel, false); ok {
				s.damage.Apply(target, bullet.Damage)
				hit = true
			}
		}
		if hit {
			destroyed = append(destroyed, bulletID)
		}
	}

	for _, id := range destroyed {
		s.ecs.RemoveEntity(id)
	}
}

func (s *CollisionSystem) bossBulletsVsPlayer() {
	player := s.ecs.Player
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || !ok {
		return
	}
	center := playerCenter(playerPos.Pos)

	var destroyed []types.EntityID
	for bulletID, bullet := range s.ecs.BossBullets {
		bulletPos, hasPos := s.ecs.Positions[bulletID]
		if !hasPos {
			continue
		}
		if bulletHits(bulletPos.Pos, bullet.Vel, center, config.PlayerRadius, bullet.IsLaser) {
			s.damage.DamagePlayer(bullet.Damage, false)
			destroyed = append(destroyed, bulletID)
		}
	}

	for _, id := range destroyed {
		s.ecs.RemoveEntity(id)
	}
}

func (s *CollisionSystem) contactDamage() {
	player := s.ecs.Player
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || !ok {
		return
	}
	center := playerCenter(playerPos.Pos)

	for enemyID, enemy := range s.ecs.Enemies {
		enemyPos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos {
			continue
		}
		if vec.Dist(enemyPos.Pos, center) > enemy.Radius+config.PlayerRadius {
			continue
		}

		if enemy.Kind == defs.EnemySuicide {
			// Камикадзе уничтожает себя и применяет большой взрыв по
			// области вместо обычного контактного урона. Смерть идёт
			// через общий путь, чтобы счёт волны и добыча сработали
			// ровно один раз.
			at := enemyPos.Pos
			blast := enemy.Damage
			s.damage.Apply(EnemyTarget(enemyID), math.MaxInt32)
			if vec.Dist(at, center) <= config.SuicideBlastRadius+config.PlayerRadius {
				s.damage.DamagePlayer(blast, true)
			}
			continue
		}

		s.damage.DamagePlayer(enemy.Damage, true)
	}

	if boss := s.ecs.Boss; boss != nil {
		if vec.Dist(boss.Pos, center) <= boss.Radius+config.PlayerRadius {
			s.damage.DamagePlayer(boss.Damage, true)
		}
	}
}

func (s *CollisionSystem) pickupsVsPlayer() {
	player := s.ecs.Player
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || !ok {
		return
	}

	var taken []types.EntityID
	for pickupID, pickup := range s.ecs.Pickups {
		pickupPos, hasPos := s.ecs.Positions[pickupID]
		if !hasPos {
			continue
		}
		if vec.Dist(pickupPos.Pos.Flat(), playerPos.Pos.Flat()) > config.PickupRadius {
			continue
		}

		switch pickup.Kind {
		case defs.PickupAmmo:
			player.ReserveAmmo += defs.WeaponLibrary[player.WeaponTier].PickupAmmo
		case defs.PickupHealth:
			player.Health += config.HealthPickupHeal
			if player.Health > player.MaxHealth {
				player.Health = player.MaxHealth
			}
		}
		taken = append(taken, pickupID)
	}

	for _, id := range taken {
		s.ecs.RemoveEntity(id)
	}
}

// playerCenter — центр тела игрока для проверок расстояний.
func playerCenter(at vec.Vec3) vec.Vec3 {
	return at.Add(vec.New(0, config.PlayerEyeHeight*0.6, 0))
}
