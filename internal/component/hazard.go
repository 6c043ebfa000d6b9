// internal/component/hazard.go
package component

import "go-arena-fps/pkg/vec"

// HazardKind — тип зоны поражения, создаваемой боссом.
type HazardKind int

const (
	HazardShockwave HazardKind = iota // Расширяющаяся ударная волна по земле
	HazardRing                        // Расширяющееся кольцо (лазерный вариант)
	HazardBeam                        // Вращающийся луч, урон масштабируется dt
)

// Hazard — зона поражения. Ударная волна и кольцо бьют игрока не больше
// одного раза и только пока он стоит на земле в тонкой полосе вокруг
// текущего радиуса. Луч наносит непрерывный урон, пока игрок пересекает
// его заметаемый объём.
type Hazard struct {
	Kind   HazardKind
	Center vec.Vec3

	// Ударная волна / кольцо.
	Radius    float64
	Speed     float64
	Band      float64
	MaxRadius float64
	Damage    int
	HasHit    bool

	// Вращающийся луч.
	Angle        float64
	RotSpeed     float64
	Length       float64
	Width        float64
	DamagePerSec float64
	TimeLeft     float64
}
