// internal/component/bullet.go
package component

import "go-arena-fps/pkg/vec"

// PlayerBullet — снаряд игрока. Лазерные снаряды проверяются вытянутым
// отрезком и не уничтожаются при попадании; взрывные при попадании
// превращаются во взрыв по области.
type PlayerBullet struct {
	Vel         vec.Vec3
	Damage      int
	IsLaser     bool
	IsExplosive bool
}

// BossBullet — снаряд босса.
type BossBullet struct {
	Vel     vec.Vec3
	Damage  int
	IsLaser bool
}

// DroneBullet — снаряд дрона-компаньона.
type DroneBullet struct {
	Vel    vec.Vec3
	Damage int
}
