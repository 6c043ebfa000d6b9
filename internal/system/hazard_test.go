package system

import (
	"testing"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/internal/types"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

func newHazardFixture() (*entity.ECS, *HazardSystem) {
	ecs := entity.NewECS()
	ds := NewDamageSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(13))
	addPlayer(ecs)
	return ecs, NewHazardSystem(ecs, ds)
}

func addShockwave(ecs *entity.ECS, center vec.Vec3, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Pos: center}
	ecs.Hazards[id] = &component.Hazard{
		Kind:      component.HazardShockwave,
		Center:    center,
		Speed:     config.ShockwaveSpeed,
		Band:      config.ShockwaveBand,
		MaxRadius: config.ShockwaveMaxRadius,
		Damage:    damage,
	}
	return id
}

func TestShockwaveHitsGroundedPlayerOnce(t *testing.T) {
	ecs, hs := newHazardFixture()
	player := ecs.Player
	addShockwave(ecs, vec.New(0, 0, -9), 20)

	// Кольцо расширяется до игрока и бьёт ровно один раз.
	for i := 0; i < 300; i++ {
		hs.Update(0.016)
	}
	if player.Health != config.PlayerMaxHealth-20 {
		t.Fatalf("player hp = %d, want single hit of 20", player.Health)
	}
}

func TestAirbornePlayerAvoidsShockwave(t *testing.T) {
	ecs, hs := newHazardFixture()
	player := ecs.Player
	player.Grounded = false // Игрок в прыжке весь проход кольца
	addShockwave(ecs, vec.New(0, 0, -9), 20)

	for i := 0; i < 300; i++ {
		hs.Update(0.016)
	}
	if player.Health != config.PlayerMaxHealth {
		t.Fatalf("jump did not avoid shockwave: hp = %d", player.Health)
	}
}

func TestShockwaveExpiresAtMaxRadius(t *testing.T) {
	ecs, hs := newHazardFixture()
	id := addShockwave(ecs, vec.New(50, 0, 50), 20)

	for i := 0; i < 400; i++ {
		hs.Update(0.016)
	}
	if _, exists := ecs.Hazards[id]; exists {
		t.Fatal("shockwave outlived its max radius")
	}
}

func TestBeamDealsScaledDamage(t *testing.T) {
	ecs, hs := newHazardFixture()
	player := ecs.Player

	// Луч направлен ровно на игрока и не вращается.
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Pos: vec.New(0, 0, -10)}
	ecs.Hazards[id] = &component.Hazard{
		Kind:         component.HazardBeam,
		Center:       vec.New(0, 0, -10),
		Angle:        0, // Взгляд вдоль -Z, игрок на +Z от центра
		RotSpeed:     0,
		Length:       config.BeamLength,
		Width:        config.BeamWidth,
		DamagePerSec: config.BeamDamagePerSec,
		TimeLeft:     config.BeamDuration,
	}
	// Направление на игрока: из (0,0,-10) к началу координат — это +Z,
	// то есть угол pi.
	ecs.Hazards[id].Angle = 3.14159265358979

	for i := 0; i < 60; i++ { // Около секунды под лучом
		hs.Update(1.0 / 60.0)
	}
	lost := config.PlayerMaxHealth - player.Health

	// За секунду луч снимает примерно DamagePerSec, дробный остаток
	// переносится между тиками и не теряется.
	if lost < int(config.BeamDamagePerSec)-2 || lost > int(config.BeamDamagePerSec)+2 {
		t.Fatalf("beam damage over 1s = %d, want about %v", lost, float64(config.BeamDamagePerSec))
	}
}

func TestBeamExpires(t *testing.T) {
	ecs, hs := newHazardFixture()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Pos: vec.New(50, 0, 50)}
	ecs.Hazards[id] = &component.Hazard{
		Kind:     component.HazardBeam,
		Center:   vec.New(50, 0, 50),
		Length:   config.BeamLength,
		Width:    config.BeamWidth,
		TimeLeft: 0.5,
	}

	for i := 0; i < 60; i++ {
		hs.Update(0.016)
	}
	if _, exists := ecs.Hazards[id]; exists {
		t.Fatal("beam outlived its duration")
	}
}
