// internal/system/bullet.go
package system

import (
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/types"
	"go-arena-fps/pkg/vec"
)

// BulletSystem продвигает все семейства снарядов и уничтожает их за
// пределами максимальной дальности от игрока. Попадания разрешает
// система столкновений.
type BulletSystem struct {
	ecs *entity.ECS
}

func NewBulletSystem(ecs *entity.ECS) *BulletSystem {
	return &BulletSystem{ecs: ecs}
}

func (s *BulletSystem) Update(deltaTime float64) {
	origin := vec.Vec3{}
	if playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]; ok {
		origin = playerPos.Pos
	}

	var expired []types.EntityID

	for id, bullet := range s.ecs.PlayerBullets {
		if s.advance(id, bullet.Vel, deltaTime, origin) {
			expired = append(expired, id)
		}
	}
	for id, bullet := range s.ecs.BossBullets {
		if s.advance(id, bullet.Vel, deltaTime, origin) {
			expired = append(expired, id)
		}
	}
	for id, bullet := range s.ecs.DroneBullets {
		if s.advance(id, bullet.Vel, deltaTime, origin) {
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}

// advance сдвигает снаряд и сообщает, вышел ли он за дальность.
func (s *BulletSystem) advance(id types.EntityID, vel vec.Vec3, deltaTime float64, origin vec.Vec3) bool {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return true
	}
	pos.Pos = pos.Pos.Add(vel.Scale(deltaTime))
	return vec.Dist(pos.Pos, origin) > config.BulletMaxRange
}
