// internal/component/drone.go
package component

import (
	"go-arena-fps/internal/types"
	"go-arena-fps/pkg/vec"
)

// Drone — дрон-компаньон. TargetID хранится как идентификатор, а не
// ссылка: если цель исчезла, поиск по реестру промахнётся и дрон просто
// перенацелится. TargetIsBoss отличает босса от обычных врагов.
type Drone struct {
	Pos          vec.Vec3
	Yaw          float64
	TargetID     types.EntityID
	TargetIsBoss bool
	FireTimer    float64
}
