// internal/component/combat.go
package component

import "image/color"

// Health — компонент здоровья.
type Health struct {
	Value int
	Max   int
}

// Renderable — минимальные данные для отрисовки сущности на схеме арены.
type Renderable struct {
	Color  color.RGBA
	Radius float64
}
