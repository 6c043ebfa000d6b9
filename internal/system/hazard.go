// internal/system/hazard.go
package system

import (
	"math"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/types"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

// HazardSystem обновляет зоны поражения босса. Ударная волна и кольцо
// бьют игрока один раз, только пока он стоит на земле в тонкой полосе
// вокруг текущего радиуса. Вращающийся луч наносит непрерывный урон,
// масштабированный dt.
type HazardSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem

	// Дробный остаток урона луча: здоровье целочисленное, а dt-доли
	// накапливаются между тиками.
	beamCarry map[types.EntityID]float64
}

func NewHazardSystem(ecs *entity.ECS, damage *DamageSystem) *HazardSystem {
	return &HazardSystem{
		ecs:       ecs,
		damage:    damage,
		beamCarry: make(map[types.EntityID]float64),
	}
}

// Reset сбрасывает накопленные остатки урона между забегами.
func (s *HazardSystem) Reset() {
	s.beamCarry = make(map[types.EntityID]float64)
}

func (s *HazardSystem) Update(deltaTime float64) {
	player := s.ecs.Player
	playerPos, hasPlayer := s.ecs.Positions[s.ecs.PlayerID]

	var expired []types.EntityID
	for id, hazard := range s.ecs.Hazards {
		switch hazard.Kind {
		case component.HazardShockwave, component.HazardRing:
			hazard.Radius += hazard.Speed * deltaTime
			if hazard.Radius >= hazard.MaxRadius {
				expired = append(expired, id)
				continue
			}
			if hasPlayer && player != nil && !hazard.HasHit && player.Grounded {
				dist := vec.Dist(hazard.Center, playerPos.Pos.Flat())
				if math.Abs(dist-hazard.Radius) <= hazard.Band {
					hazard.HasHit = true
					s.damage.DamagePlayer(hazard.Damage, false)
				}
			}

		case component.HazardBeam:
			hazard.Angle = utils.NormalizeAngle(hazard.Angle + hazard.RotSpeed*deltaTime)
			hazard.TimeLeft -= deltaTime
			if hazard.TimeLeft <= 0 {
				expired = append(expired, id)
				continue
			}
			if hasPlayer && player != nil && s.beamIntersects(hazard, playerPos.Pos) {
				s.beamCarry[id] += hazard.DamagePerSec * deltaTime
				if whole := int(s.beamCarry[id]); whole > 0 {
					s.beamCarry[id] -= float64(whole)
					s.damage.DamagePlayer(whole, false)
				}
			}
		}
	}

	for _, id := range expired {
		s.ecs.RemoveEntity(id)
		delete(s.beamCarry, id)
	}
}

// beamIntersects проверяет, пересекает ли игрок заметаемый объём луча.
func (s *HazardSystem) beamIntersects(hazard *component.Hazard, playerAt vec.Vec3) bool {
	tip := hazard.Center.Add(vec.FromYaw(hazard.Angle).Scale(hazard.Length))
	return vec.SegmentDist(playerAt.Flat(), hazard.Center, tip) <= hazard.Width
}
