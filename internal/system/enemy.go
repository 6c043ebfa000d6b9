// internal/system/enemy.go
package system

import (
	"go-arena-fps/internal/entity"
)

// EnemySystem двигает врагов к игроку. Летуны держат свою высоту,
// наземные идут по плоскости. Контактный урон разрешается системой
// столкновений, здесь только движение и разворот.
type EnemySystem struct {
	ecs *entity.ECS
}

func NewEnemySystem(ecs *entity.ECS) *EnemySystem {
	return &EnemySystem{ecs: ecs}
}

func (s *EnemySystem) Update(deltaTime float64) {
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}

	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		target := playerPos.Pos.Flat()
		target.Y = enemy.Altitude

		to := target.Sub(pos.Pos)
		dist := to.Len()
		if dist < 1e-6 {
			continue
		}
		dir := to.Scale(1.0 / dist)

		step := enemy.Speed * deltaTime
		if step > dist {
			step = dist
		}
		pos.Pos = pos.Pos.Add(dir.Scale(step))

		if orient, hasOrient := s.ecs.Orientations[id]; hasOrient {
			orient.Yaw = dir.Flat().Yaw()
		}
	}
}
