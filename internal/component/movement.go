// internal/component/movement.go
package component

import "go-arena-fps/pkg/vec"

// Position — компонент позиции в мировом пространстве.
type Position struct {
	Pos vec.Vec3
}

// Orientation — ориентация сущности (рысканье вокруг вертикали и тангаж).
type Orientation struct {
	Yaw   float64
	Pitch float64
}
