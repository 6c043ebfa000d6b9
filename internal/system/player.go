// internal/system/player.go
package system

import (
	"math"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

// PlayerGameContext определяет, что PlayerSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type PlayerGameContext interface {
	IsNewGamePlus() bool
}

// PlayerSystem владеет логикой игрока: передвижение, выносливость,
// стрельба, перезарядка, ближний бой и навыки.
type PlayerSystem struct {
	ecs    *entity.ECS
	rng    *utils.PRNGService
	damage *DamageSystem
	game   PlayerGameContext
}

func NewPlayerSystem(ecs *entity.ECS, rng *utils.PRNGService, damage *DamageSystem, game PlayerGameContext) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, rng: rng, damage: damage, game: game}
}

func (s *PlayerSystem) Update(deltaTime float64, in component.InputIntents) {
	player := s.ecs.Player
	pos := s.ecs.Positions[s.ecs.PlayerID]
	orient := s.ecs.Orientations[s.ecs.PlayerID]
	if player == nil || pos == nil || orient == nil || player.Health <= 0 {
		return
	}

	s.updateLook(orient, in)
	s.tickCooldowns(player, deltaTime)
	s.updateAimAndReload(player, in, deltaTime)
	s.updateMelee(player, pos, orient, in, deltaTime)
	s.updateMovement(player, pos, orient, in, deltaTime)
	s.updateSkills(player, in)
	s.updateFire(player, pos, orient, in)

	player.TriggerHeld = in.FireHeld
}

func (s *PlayerSystem) updateLook(orient *component.Orientation, in component.InputIntents) {
	orient.Yaw += in.LookYaw
	orient.Pitch = utils.Clamp(orient.Pitch+in.LookPitch, -math.Pi/2, math.Pi/2)
}

func (s *PlayerSystem) tickCooldowns(player *component.PlayerState, deltaTime float64) {
	player.Melee.Cooldown = math.Max(0, player.Melee.Cooldown-deltaTime)
	player.SkillQ.Cooldown = math.Max(0, player.SkillQ.Cooldown-deltaTime)
	player.SkillZ.Cooldown = math.Max(0, player.SkillZ.Cooldown-deltaTime)
	player.Shield.Cooldown = math.Max(0, player.Shield.Cooldown-deltaTime)

	// Длительности активных навыков тикают независимо от их перезарядки.
	if player.SkillZ.Active {
		player.SkillZ.TimeLeft -= deltaTime
		if player.SkillZ.TimeLeft <= 0 {
			player.SkillZ.Active = false
			player.SkillZ.TimeLeft = 0
		}
	}
	if player.Shield.Active {
		player.Shield.TimeLeft -= deltaTime
		if player.Shield.TimeLeft <= 0 {
			player.Shield.Active = false
			player.Shield.TimeLeft = 0
		}
	}
}

func (s *PlayerSystem) updateAimAndReload(player *component.PlayerState, in component.InputIntents, deltaTime float64) {
	weapon := defs.WeaponLibrary[player.WeaponTier]

	// Перезарядка в процессе принудительно сбрасывает прицеливание.
	player.Aiming = in.AimHeld && !player.Reloading && !player.Melee.Attacking

	if player.Reloading {
		player.ReloadTimer -= deltaTime
		if player.ReloadTimer <= 0 {
			needed := weapon.MagazineSize - player.AmmoInMagazine
			taken := needed
			if taken > player.ReserveAmmo {
				taken = player.ReserveAmmo
			}
			player.AmmoInMagazine += taken
			player.ReserveAmmo -= taken
			player.Reloading = false
			player.ReloadTimer = 0
		}
		return
	}

	// Перегрузка стреляет без магазина, перезаряжать нечего.
	if in.Reload && !player.SkillZ.Active && !player.Melee.Attacking &&
		player.AmmoInMagazine < weapon.MagazineSize && player.ReserveAmmo > 0 {
		player.Reloading = true
		player.ReloadTimer = weapon.ReloadTime
		player.Aiming = false
	}
}

func (s *PlayerSystem) updateMelee(player *component.PlayerState, pos *component.Position, orient *component.Orientation, in component.InputIntents, deltaTime float64) {
	if player.Melee.Attacking {
		player.Melee.TimeLeft -= deltaTime

		// Проверка попадания выполняется один раз, в фиксированный момент
		// внутри окна замаха.
		elapsed := config.MeleeSwingTime - player.Melee.TimeLeft
		if !player.Melee.HitDone && elapsed >= config.MeleeHitMoment {
			player.Melee.HitDone = true
			s.meleeSweep(pos.Pos, orient.Yaw)
		}
		if player.Melee.TimeLeft <= 0 {
			player.Melee.Attacking = false
			player.Melee.TimeLeft = 0
		}
		return
	}

	// Удар несовместим с прицеливанием и перезарядкой.
	if in.Melee && player.Melee.Cooldown <= 0 && !player.Aiming && !player.Reloading {
		player.Melee.Attacking = true
		player.Melee.TimeLeft = config.MeleeSwingTime
		player.Melee.HitDone = false
		player.Melee.Cooldown = config.MeleeCooldown
	}
}

// meleeSweep бьёт по всем врагам и боссу в переднем конусе и радиусе удара.
func (s *PlayerSystem) meleeSweep(from vec.Vec3, yaw float64) {
	facing := vec.FromYaw(yaw)

	targets := make([]Target, 0, 4)
	for id := range s.ecs.Enemies {
		enemyPos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if s.inMeleeCone(from, facing, enemyPos.Pos, s.ecs.Enemies[id].Radius) {
			targets = append(targets, EnemyTarget(id))
		}
	}
	if boss := s.ecs.Boss; boss != nil {
		if boss.WeakPoint != nil && s.inMeleeCone(from, facing, boss.WeakPoint.Pos, boss.WeakPoint.Radius) {
			targets = append(targets, BossTarget(true))
		} else if s.inMeleeCone(from, facing, boss.Pos, boss.Radius) {
			targets = append(targets, BossTarget(false))
		}
	}
	for _, t := range targets {
		s.damage.Apply(t, config.MeleeDamage)
	}
}

func (s *PlayerSystem) inMeleeCone(from, facing, target vec.Vec3, targetRadius float64) bool {
	to := target.Sub(from).Flat()
	dist := to.Len()
	if dist > config.MeleeRange+targetRadius {
		return false
	}
	if dist < 1e-6 {
		return true
	}
	return to.Normalized().Dot(facing) >= config.MeleeConeCos
}

func (s *PlayerSystem) updateMovement(player *component.PlayerState, pos *component.Position, orient *component.Orientation, in component.InputIntents, deltaTime float64) {
	// Составляем направление из четырёх намерений и нормализуем,
	// чтобы диагональ не была быстрее.
	var forward, strafe float64
	if in.MoveForward {
		forward++
	}
	if in.MoveBack {
		forward--
	}
	if in.MoveRight {
		strafe++
	}
	if in.MoveLeft {
		strafe--
	}

	moving := forward != 0 || strafe != 0
	sprinting := in.Sprint && moving && !player.Aiming && player.Stamina > 0
	player.Sprinting = sprinting

	speed := config.PlayerWalkSpeed
	if sprinting {
		speed *= config.SprintMultiplier
	}
	if player.Aiming {
		speed *= config.AimSpeedFactor
	}

	if moving {
		length := math.Hypot(forward, strafe)
		forward /= length
		strafe /= length

		dir := vec.FromYaw(orient.Yaw).Scale(forward).
			Add(vec.FromYaw(orient.Yaw + math.Pi/2).Scale(strafe))
		pos.Pos = pos.Pos.Add(dir.Scale(speed * deltaTime))
	}

	// Выносливость: расход в спринте при движении, иначе восстановление.
	if sprinting {
		player.Stamina -= config.StaminaDrainRate * deltaTime
	} else {
		player.Stamina += config.StaminaRegenRate * deltaTime
	}
	player.Stamina = utils.Clamp(player.Stamina, 0, player.MaxStamina)

	// Вертикаль: постоянная гравитация, прыжок только с земли.
	if in.Jump && player.Grounded {
		player.VerticalVel = config.JumpImpulse
		player.Grounded = false
	}
	if !player.Grounded {
		player.VerticalVel -= config.Gravity * deltaTime
		pos.Pos.Y += player.VerticalVel * deltaTime
		if pos.Pos.Y <= 0 {
			pos.Pos.Y = 0
			player.VerticalVel = 0
			player.Grounded = true
		}
	}
}

func (s *PlayerSystem) updateSkills(player *component.PlayerState, in component.InputIntents) {
	// Лечение: мгновенно, с зажимом к максимуму.
	if in.SkillQ && player.SkillQ.Unlocked && player.SkillQ.Cooldown <= 0 {
		player.Health = utils.ClampInt(player.Health+config.HealAmount, 0, player.MaxHealth)
		player.SkillQ.Cooldown = config.HealCooldown
	}

	// Перегрузка: перезарядка стартует сразу при активации.
	if in.SkillZ && player.SkillZ.Unlocked && player.SkillZ.Cooldown <= 0 {
		player.SkillZ.Active = true
		player.SkillZ.TimeLeft = config.OverchargeTime
		player.SkillZ.Cooldown = config.OverchargeCD
	}

	if in.ShieldSkill && player.Shield.Unlocked && player.Shield.Cooldown <= 0 {
		player.Shield.Active = true
		player.Shield.TimeLeft = config.ShieldDuration
		player.Shield.Cooldown = config.ShieldCooldown
	}
}

func (s *PlayerSystem) updateFire(player *component.PlayerState, pos *component.Position, orient *component.Orientation, in component.InputIntents) {
	if !in.FireHeld || player.Reloading || player.Melee.Attacking {
		return
	}

	weapon := defs.WeaponLibrary[player.WeaponTier]
	fireCooldown := weapon.FireCooldown
	if player.SkillZ.Active {
		fireCooldown = config.OverchargeFireCD
	}
	if s.ecs.GameTime-player.LastShotTime < fireCooldown {
		return
	}

	// Полуавтомат требует отпускания спускового крючка между выстрелами.
	// В New Game+ второй ствол тоже становится полуавтоматическим.
	automatic := weapon.Automatic && !s.game.IsNewGamePlus()
	if player.SkillZ.Active {
		automatic = true
	}
	if !automatic && player.TriggerHeld {
		return
	}

	if !player.SkillZ.Active {
		if player.AmmoInMagazine <= 0 {
			return
		}
		player.AmmoInMagazine--
	}
	player.LastShotTime = s.ecs.GameTime

	s.spawnBullet(player, pos.Pos, orient, weapon)
}

func (s *PlayerSystem) spawnBullet(player *component.PlayerState, from vec.Vec3, orient *component.Orientation, weapon defs.WeaponDefinition) {
	dir := vec.FromYawPitch(
		orient.Yaw+s.rng.Spread(weapon.Spread),
		orient.Pitch+s.rng.Spread(weapon.Spread),
	)

	bullet := &component.PlayerBullet{
		Vel:         dir.Scale(config.PlayerBulletSpeed),
		Damage:      weapon.Damage,
		IsLaser:     weapon.Laser,
		IsExplosive: weapon.Explosive,
	}
	if player.SkillZ.Active {
		// Перегрузка: усиленные обычные выстрелы, без взрывов и без
		// проходящих насквозь лазерных отрезков.
		bullet.Damage = config.OverchargeDamage
		bullet.IsLaser = false
		bullet.IsExplosive = false
	}

	bulletColor := config.PlayerBulletColor
	if bullet.IsLaser {
		bulletColor = config.LaserColor
	}

	id := s.ecs.NewEntity()
	muzzle := from.Add(vec.New(0, config.PlayerEyeHeight, 0)).Add(dir.Scale(0.8))
	s.ecs.Positions[id] = &component.Position{Pos: muzzle}
	s.ecs.PlayerBullets[id] = bullet
	s.ecs.Renderables[id] = &component.Renderable{Color: bulletColor, Radius: 0.2}
}
