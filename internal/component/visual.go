// internal/component/visual.go
package component

import "image/color"

// Explosion — временная вспышка взрыва. Чисто косметическая, но живёт в
// реестре как обычная сущность с таймером жизни.
type Explosion struct {
	Timer     float64 // Сколько эффект уже активен
	Duration  float64
	MaxRadius float64
	Core      color.RGBA
	Spark     color.RGBA
	Particles int
}

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64
	Duration float64
}
