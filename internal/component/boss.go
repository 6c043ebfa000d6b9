// internal/component/boss.go
package component

import "go-arena-fps/pkg/vec"

// WeakPoint — единственная уязвимая часть финального босса.
// Точка движется по замкнутому круговому пути; Progress ∈ [0,1)
// зацикливается непрерывно.
type WeakPoint struct {
	Health    int
	MaxHealth int
	Progress  float64
	Pos       vec.Vec3
	Radius    float64
}

// Boss — активный босс. Одновременно существует не больше одного.
// Для финального яруса тело неуязвимо: весь урон направляется в WeakPoint.
type Boss struct {
	Tier      int
	Name      string
	IntroLine string
	Health    int
	MaxHealth int
	Damage    int
	Speed     float64
	Radius    float64

	Pos vec.Vec3
	Yaw float64

	AttackTimer float64

	// Состояние поэтапного кольцевого залпа (финальный ярус, вариант A).
	BurstShotsLeft int
	BurstTimer     float64
	BurstIndex     int

	WeakPoint *WeakPoint
}
