// internal/system/bullet_test.go
package system

import (
	"testing"

	"go-arena-fps/internal/config"
	"go-arena-fps/internal/entity"
	"go-arena-fps/pkg/vec"
)

func TestBulletsAdvanceByVelocity(t *testing.T) {
	ecs := entity.NewECS()
	addPlayer(ecs)
	bs := NewBulletSystem(ecs)

	id := addPlayerBullet(ecs, vec.Vec3{Y: 1.5}, vec.Vec3{Z: -10}, 10, false, false)
	bs.Update(0.5)

	pos, ok := ecs.Positions[id]
	if !ok {
		t.Fatal("bullet disappeared mid-flight")
	}
	if pos.Pos.Z != -5 {
		t.Fatalf("bullet Z = %v, want -5", pos.Pos.Z)
	}
}

func TestBulletExpiresBeyondMaxRange(t *testing.T) {
	ecs := entity.NewECS()
	addPlayer(ecs)
	bs := NewBulletSystem(ecs)

	near := addPlayerBullet(ecs, vec.Vec3{Y: 1.5}, vec.Vec3{Z: -1}, 10, false, false)
	far := addPlayerBullet(ecs, vec.Vec3{Z: -config.BulletMaxRange + 1}, vec.Vec3{Z: -10}, 10, false, false)

	bs.Update(1.0)

	if _, ok := ecs.PlayerBullets[near]; !ok {
		t.Error("in-range bullet was destroyed")
	}
	if _, ok := ecs.PlayerBullets[far]; ok {
		t.Error("out-of-range bullet survived")
	}
	if _, ok := ecs.Positions[far]; ok {
		t.Error("expired bullet left a stale position")
	}
}
