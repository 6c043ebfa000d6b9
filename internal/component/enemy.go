// internal/component/enemy.go
package component

import "go-arena-fps/internal/defs"

// Enemy представляет вражескую сущность. Статы копируются из определения
// при спавне (с учётом множителя New Game+), чтобы урон и скорость
// оставались стабильными на всю жизнь сущности.
type Enemy struct {
	Kind       defs.EnemyKind
	Damage     int
	Speed      float64
	Radius     float64
	Altitude   float64
	DropChance float64
}
