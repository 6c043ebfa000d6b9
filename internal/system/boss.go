// internal/system/boss.go
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

// BossSystem двигает босса, обновляет уязвимую точку финального яруса и
// выбирает атакующий паттерн по перезарядке яруса.
type BossSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewBossSystem(ecs *entity.ECS, rng *utils.PRNGService) *BossSystem {
	return &BossSystem{ecs: ecs, rng: rng}
}

func (s *BossSystem) Update(deltaTime float64) {
	boss := s.ecs.Boss
	if boss == nil {
		return
	}
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}

	s.updateMovement(boss, playerPos.Pos, deltaTime)
	s.updateBurst(boss, deltaTime)

	boss.AttackTimer -= deltaTime
	if boss.AttackTimer <= 0 {
		s.executePattern(boss, playerPos.Pos)
		boss.AttackTimer = defs.BossLibrary[boss.Tier].AttackCooldown
	}
}

func (s *BossSystem) updateMovement(boss *component.Boss, playerAt vec.Vec3, deltaTime float64) {
	if boss.WeakPoint != nil {
		// Финальный босс не двигается, к игроку идёт только уязвимая
		// точка по замкнутому круговому пути вокруг тела.
		wp := boss.WeakPoint
		wp.Progress += config.WeakPointOrbitSpeed * deltaTime
		wp.Progress -= math.Floor(wp.Progress) // держим в [0,1)
		angle := wp.Progress * 2 * math.Pi
		wp.Pos = boss.Pos.Add(vec.New(
			math.Cos(angle)*config.WeakPointOrbit,
			1.5+math.Sin(angle*2)*0.8,
			math.Sin(angle)*config.WeakPointOrbit,
		))
		boss.Yaw = playerAt.Sub(boss.Pos).Flat().Yaw()
		return
	}

	to := playerAt.Sub(boss.Pos).Flat()
	dist := to.Len()
	if dist > boss.Radius+config.PlayerRadius {
		dir := to.Normalized()
		boss.Pos = boss.Pos.Add(dir.Scale(boss.Speed * deltaTime))
	}
	boss.Yaw = to.Yaw()
}

func (s *BossSystem) executePattern(boss *component.Boss, playerAt vec.Vec3) {
	switch boss.Tier {
	case 1:
		s.aimedShot(boss, playerAt, false)
	case 2:
		// Веер из пяти выстрелов, центрированный на направлении к игроку.
		base := playerAt.Sub(boss.Pos).Flat().Yaw()
		for i := -2; i <= 2; i++ {
			s.shotAtYaw(boss, base+float64(i)*0.18, false)
		}
	case 3:
		s.aimedShot(boss, playerAt, false)
		s.spawnShockwave(boss, component.HazardShockwave)
	case 4:
		s.aimedShot(boss, playerAt, true)
		s.spawnShockwave(boss, component.HazardRing)
	case 5:
		if s.rng.Intn(2) == 0 {
			// Кольцевой залп выпускается поэтапно, см. updateBurst.
			boss.BurstShotsLeft = config.RingBurstShots
			boss.BurstTimer = 0
			boss.BurstIndex = 0
		} else {
			s.spawnBeam(boss)
		}
	}
}

// updateBurst продолжает поэтапный кольцевой залп между выборами паттерна.
func (s *BossSystem) updateBurst(boss *component.Boss, deltaTime float64) {
	if boss.BurstShotsLeft <= 0 {
		return
	}
	boss.BurstTimer -= deltaTime
	for boss.BurstTimer < 0 && boss.BurstShotsLeft > 0 {
		yaw := float64(boss.BurstIndex) / config.RingBurstShots * 2 * math.Pi
		s.shotAtYaw(boss, yaw, false)
		boss.BurstIndex++
		boss.BurstShotsLeft--
		boss.BurstTimer += config.RingBurstStagger
	}
}

func (s *BossSystem) aimedShot(boss *component.Boss, playerAt vec.Vec3, laser bool) {
	target := playerAt.Add(vec.New(0, config.PlayerEyeHeight*0.5, 0))
	dir := target.Sub(boss.Pos).Normalized()
	s.spawnBossBullet(boss, dir, laser)
}

func (s *BossSystem) shotAtYaw(boss *component.Boss, yaw float64, laser bool) {
	s.spawnBossBullet(boss, vec.FromYaw(yaw), laser)
}

func (s *BossSystem) spawnBossBullet(boss *component.Boss, dir vec.Vec3, laser bool) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Pos: boss.Pos.Add(dir.Scale(boss.Radius))}
	s.ecs.BossBullets[id] = &component.BossBullet{
		Vel:     dir.Scale(config.BossBulletSpeed),
		Damage:  boss.Damage,
		IsLaser: laser,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.BossBulletColor, Radius: 0.3}
}

func (s *BossSystem) spawnShockwave(boss *component.Boss, kind component.HazardKind) {
	id := s.ecs.NewEntity()
	center := boss.Pos.Flat()
	s.ecs.Positions[id] = &component.Position{Pos: center}
	s.ecs.Hazards[id] = &component.Hazard{
		Kind:      kind,
		Center:    center,
		Speed:     config.ShockwaveSpeed,
		Band:      config.ShockwaveBand,
		MaxRadius: config.ShockwaveMaxRadius,
		Damage:    boss.Damage,
	}
}

func (s *BossSystem) spawnBeam(boss *component.Boss) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Pos: boss.Pos}
	s.ecs.Hazards[id] = &component.Hazard{
		Kind:         component.HazardBeam,
		Center:       boss.Pos.Flat(),
		Angle:        s.rng.Float64() * 2 * math.Pi,
		RotSpeed:     config.BeamRotationSpeed,
		Length:       config.BeamLength,
		Width:        config.BeamWidth,
		DamagePerSec: config.BeamDamagePerSec,
		TimeLeft:     config.BeamDuration,
	}
}
