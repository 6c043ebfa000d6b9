// internal/system/drone.go
package system

import (
	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/entity"
	"go-arena-fps/pkg/vec"
)

// DroneSystem управляет компаньоном: следование за игроком, выбор цели
// и автоматический огонь. Дрон хранит только идентификатор цели;
// если цель уже умерла, промах по реестру заставит его перецелиться.
type DroneSystem struct {
	ecs *entity.ECS
}

func NewDroneSystem(ecs *entity.ECS) *DroneSystem {
	return &DroneSystem{ecs: ecs}
}

func (s *DroneSystem) Update(deltaTime float64) {
	drone := s.ecs.Drone
	player := s.ecs.Player
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if drone == nil || player == nil || !ok {
		return
	}

	s.follow(drone, playerPos.Pos, deltaTime)
	s.retarget(drone, playerPos.Pos)

	drone.FireTimer -= deltaTime
	if drone.FireTimer <= 0 {
		if target, ok := s.targetPos(drone); ok {
			s.fire(drone, target)
			drone.FireTimer = config.DroneFireInterval
		}
	}
}

// follow плавно подтягивает дрона к точке за плечом игрока.
func (s *DroneSystem) follow(drone *component.Drone, playerAt vec.Vec3, deltaTime float64) {
	orient := s.ecs.Orientations[s.ecs.PlayerID]
	back := vec.FromYaw(orient.Yaw).Scale(-config.DroneOffsetBack)
	anchor := playerAt.Add(back).Add(vec.New(0, config.DroneOffsetUp, 0))

	t := config.DroneFollowSpeed * deltaTime
	if t > 1 {
		t = 1
	}
	drone.Pos = vec.Lerp(drone.Pos, anchor, t)
}

// retarget сбрасывает цель, когда та исчезла или ушла за радиус, и
// выбирает ближайшего врага либо босса в пределах дальности.
func (s *DroneSystem) retarget(drone *component.Drone, playerAt vec.Vec3) {
	if current, ok := s.targetPos(drone); ok &&
		vec.Dist(drone.Pos, current) <= config.DroneRange {
		return
	}
	drone.TargetID = 0
	drone.TargetIsBoss = false

	bestDist := config.DroneRange
	found := false
	for enemyID := range s.ecs.Enemies {
		enemyPos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos {
			continue
		}
		d := vec.Dist(drone.Pos, enemyPos.Pos)
		if d <= bestDist {
			bestDist = d
			drone.TargetID = enemyID
			found = true
		}
	}
	if found {
		return
	}
	if boss := s.ecs.Boss; boss != nil && vec.Dist(drone.Pos, boss.Pos) <= config.DroneRange {
		drone.TargetIsBoss = true
	}
}

// targetPos возвращает позицию текущей цели. Устаревший идентификатор
// промахивается мимо карт реестра и считается отсутствием цели.
func (s *DroneSystem) targetPos(drone *component.Drone) (vec.Vec3, bool) {
	if drone.TargetIsBoss {
		if boss := s.ecs.Boss; boss != nil {
			return boss.Pos, true
		}
		return vec.Vec3{}, false
	}
	if drone.TargetID == 0 {
		return vec.Vec3{}, false
	}
	if _, alive := s.ecs.Enemies[drone.TargetID]; !alive {
		return vec.Vec3{}, false
	}
	pos, ok := s.ecs.Positions[drone.TargetID]
	if !ok {
		return vec.Vec3{}, false
	}
	return pos.Pos, true
}

func (s *DroneSystem) fire(drone *component.Drone, target vec.Vec3) {
	dir := target.Sub(drone.Pos).Normalized()
	drone.Yaw = dir.Yaw()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Pos: drone.Pos}
	s.ecs.DroneBullets[id] = &component.DroneBullet{
		Vel:    dir.Scale(config.DroneBulletSpeed),
		Damage: config.DroneDamage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.DroneBulletColor,
		Radius: 0.15,
	}
}
