package system

import (
	"math"
	"testing"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/defs"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/internal/utils"
	"go-arena-fps/pkg/vec"
)

type fakeGameContext struct {
	ngPlus bool
}

func (f *fakeGameContext) IsNewGamePlus() bool { return f.ngPlus }

func newPlayerFixture(ngPlus bool) (*entity.ECS, *PlayerSystem, *component.PlayerState) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(3)
	ds := NewDamageSystem(ecs, dispatcher, rng)
	ps := NewPlayerSystem(ecs, rng, ds, &fakeGameContext{ngPlus: ngPlus})

	player := addPlayer(ecs)
	player.AmmoInMagazine = defs.WeaponLibrary[defs.WeaponTier1].MagazineSize
	player.ReserveAmmo = config.StartingReserve
	player.LastShotTime = -10

	return ecs, ps, player
}

// step продвигает игровое время вместе с системой, как это делает Game.
func step(ecs *entity.ECS, ps *PlayerSystem, dt float64, in component.InputIntents) {
	ecs.GameTime += dt
	ps.Update(dt, in)
}

func TestSemiAutoRequiresTriggerRelease(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)

	held := component.InputIntents{FireHeld: true}
	for i := 0; i < 30; i++ {
		step(ecs, ps, 0.016, held)
	}
	if len(ecs.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d while trigger held, want 1", len(ecs.PlayerBullets))
	}
	if player.AmmoInMagazine != 29 {
		t.Fatalf("ammo = %d, want 29", player.AmmoInMagazine)
	}

	step(ecs, ps, 0.2, component.InputIntents{}) // Отпустили
	step(ecs, ps, 0.016, held)
	if len(ecs.PlayerBullets) != 2 {
		t.Fatalf("bullets = %d after release and re-press", len(ecs.PlayerBullets))
	}
}

func TestEmptyMagazineDoesNotFire(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.AmmoInMagazine = 0

	step(ecs, ps, 0.016, component.InputIntents{FireHeld: true})
	if len(ecs.PlayerBullets) != 0 {
		t.Fatal("fired with empty magazine")
	}
}

func TestReloadTopsUpFromReserve(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.AmmoInMagazine = 5
	player.ReserveAmmo = 90

	step(ecs, ps, 0.016, component.InputIntents{Reload: true})
	if !player.Reloading {
		t.Fatal("reload not started")
	}
	// Выстрел во время перезарядки невозможен.
	step(ecs, ps, 0.016, component.InputIntents{FireHeld: true})
	if len(ecs.PlayerBullets) != 0 {
		t.Fatal("fired while reloading")
	}

	step(ecs, ps, defs.WeaponLibrary[defs.WeaponTier1].ReloadTime, component.InputIntents{})
	if player.Reloading {
		t.Fatal("reload did not finish")
	}
	if player.AmmoInMagazine != 30 || player.ReserveAmmo != 65 {
		t.Fatalf("ammo = %d/%d, want 30/65", player.AmmoInMagazine, player.ReserveAmmo)
	}
}

func TestReloadLimitedByReserve(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.AmmoInMagazine = 0
	player.ReserveAmmo = 7

	step(ecs, ps, 0.016, component.InputIntents{Reload: true})
	step(ecs, ps, 2.0, component.InputIntents{})
	if player.AmmoInMagazine != 7 || player.ReserveAmmo != 0 {
		t.Fatalf("ammo = %d/%d, want 7/0", player.AmmoInMagazine, player.ReserveAmmo)
	}
}

func TestReloadCancelsAiming(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.AmmoInMagazine = 5

	step(ecs, ps, 0.016, component.InputIntents{AimHeld: true})
	if !player.Aiming {
		t.Fatal("aim not registered")
	}
	step(ecs, ps, 0.016, component.InputIntents{AimHeld: true, Reload: true})
	step(ecs, ps, 0.016, component.InputIntents{AimHeld: true})
	if player.Aiming {
		t.Fatal("aiming persisted through reload")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.SkillQ.Unlocked = true
	player.Health = 90

	step(ecs, ps, 0.016, component.InputIntents{SkillQ: true})
	if player.Health != player.MaxHealth {
		t.Fatalf("health = %d, want clamp at %d", player.Health, player.MaxHealth)
	}
	if player.SkillQ.Cooldown <= 0 {
		t.Fatal("heal cooldown not started")
	}

	// Повторное лечение на перезарядке не проходит.
	player.Health = 10
	step(ecs, ps, 0.016, component.InputIntents{SkillQ: true})
	if player.Health != 10 {
		t.Fatal("heal ignored its cooldown")
	}
}

func TestLockedSkillsIgnored(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.Health = 50

	step(ecs, ps, 0.016, component.InputIntents{SkillQ: true, SkillZ: true, ShieldSkill: true})
	if player.Health != 50 || player.SkillZ.Active || player.Shield.Active {
		t.Fatal("locked skill activated")
	}
}

func TestOverchargeFiresWithoutAmmo(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.SkillZ.Unlocked = true
	player.AmmoInMagazine = 0

	step(ecs, ps, 0.016, component.InputIntents{SkillZ: true})
	if !player.SkillZ.Active {
		t.Fatal("overcharge not active")
	}
	step(ecs, ps, 0.1, component.InputIntents{FireHeld: true})
	if len(ecs.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d during overcharge", len(ecs.PlayerBullets))
	}
	// Выстрелы перегрузки — обычные снаряды: не лазер (иначе отрезок
	// перепопадал бы каждый кадр) и не взрывные.
	for _, b := range ecs.PlayerBullets {
		if b.IsLaser || b.IsExplosive || b.Damage != config.OverchargeDamage {
			t.Fatalf("overcharge bullet = %+v", b)
		}
	}
	if player.AmmoInMagazine != 0 {
		t.Fatal("overcharge consumed ammo")
	}
}

func TestOverchargeExpires(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.SkillZ.Unlocked = true

	step(ecs, ps, 0.016, component.InputIntents{SkillZ: true})
	step(ecs, ps, config.OverchargeTime+0.1, component.InputIntents{})
	if player.SkillZ.Active {
		t.Fatal("overcharge still active after its duration")
	}
	if player.SkillZ.Cooldown <= 0 {
		t.Fatal("overcharge cooldown should still be ticking")
	}
}

func TestSprintDrainsAndRegensStamina(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)

	run := component.InputIntents{MoveForward: true, Sprint: true}
	step(ecs, ps, 1.0, run)
	want := config.PlayerMaxStamina - config.StaminaDrainRate
	if math.Abs(player.Stamina-want) > 1e-9 {
		t.Fatalf("stamina = %v, want %v", player.Stamina, want)
	}

	step(ecs, ps, 1.0, component.InputIntents{})
	if player.Stamina <= want {
		t.Fatal("stamina did not regenerate at rest")
	}
}

func TestNoSprintWhileAiming(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)

	step(ecs, ps, 0.016, component.InputIntents{MoveForward: true, Sprint: true, AimHeld: true})
	if player.Sprinting {
		t.Fatal("sprinted while aiming")
	}
}

func TestStaminaNeverNegative(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.Stamina = 0.5

	run := component.InputIntents{MoveForward: true, Sprint: true}
	for i := 0; i < 100; i++ {
		step(ecs, ps, 0.1, run)
	}
	if player.Stamina < 0 {
		t.Fatalf("stamina = %v", player.Stamina)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	pos := ecs.Positions[ecs.PlayerID]

	step(ecs, ps, 0.016, component.InputIntents{Jump: true})
	if player.Grounded {
		t.Fatal("jump did not leave the ground")
	}
	airborneVel := player.VerticalVel

	// Повторный прыжок в воздухе игнорируется.
	step(ecs, ps, 0.016, component.InputIntents{Jump: true})
	if player.VerticalVel > airborneVel {
		t.Fatal("double jump")
	}

	// Гравитация возвращает на землю.
	for i := 0; i < 200 && !player.Grounded; i++ {
		step(ecs, ps, 0.05, component.InputIntents{})
	}
	if !player.Grounded || pos.Pos.Y != 0 {
		t.Fatalf("player did not land: grounded=%v y=%v", player.Grounded, pos.Pos.Y)
	}
}

func TestDiagonalNotFaster(t *testing.T) {
	ecs, ps, _ := newPlayerFixture(false)
	pos := ecs.Positions[ecs.PlayerID]

	step(ecs, ps, 1.0, component.InputIntents{MoveForward: true, MoveRight: true})
	dist := pos.Pos.Flat().Len()
	if dist > config.PlayerWalkSpeed+1e-6 {
		t.Fatalf("diagonal speed = %v, want <= %v", dist, float64(config.PlayerWalkSpeed))
	}
}

func TestMeleeHitsFrontCone(t *testing.T) {
	ecs, ps, _ := newPlayerFixture(false)
	// Взгляд по умолчанию — вдоль -Z.
	front := addEnemy(ecs, vec.New(0, 0, -2), 30, 0)
	behind := addEnemy(ecs, vec.New(0, 0, 2), 30, 0)

	step(ecs, ps, 0.016, component.InputIntents{Melee: true})
	for i := 0; i < 30; i++ {
		step(ecs, ps, 0.016, component.InputIntents{})
	}

	if _, alive := ecs.Enemies[front]; alive {
		t.Fatal("enemy in front survived melee")
	}
	if _, alive := ecs.Enemies[behind]; !alive {
		t.Fatal("melee hit enemy behind the player")
	}
}

func TestMeleeBlocksFiring(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)

	step(ecs, ps, 0.016, component.InputIntents{Melee: true})
	if !player.Melee.Attacking {
		t.Fatal("melee not started")
	}
	step(ecs, ps, 0.016, component.InputIntents{FireHeld: true})
	if len(ecs.PlayerBullets) != 0 {
		t.Fatal("fired during melee swing")
	}
}

func TestMeleeBlockedWhileAiming(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)

	step(ecs, ps, 0.016, component.InputIntents{AimHeld: true, Melee: true})
	if player.Melee.Attacking {
		t.Fatal("melee started while aiming")
	}
}

func TestNewGamePlusMakesTierTwoSemiAuto(t *testing.T) {
	ecs, ps, player := newPlayerFixture(true)
	player.WeaponTier = defs.WeaponTier2
	player.AmmoInMagazine = defs.WeaponLibrary[defs.WeaponTier2].MagazineSize

	held := component.InputIntents{FireHeld: true}
	for i := 0; i < 60; i++ {
		step(ecs, ps, 0.016, held)
	}
	if len(ecs.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d, tier2 must be semi-auto in NG+", len(ecs.PlayerBullets))
	}
}

func TestTierTwoAutomaticByDefault(t *testing.T) {
	ecs, ps, player := newPlayerFixture(false)
	player.WeaponTier = defs.WeaponTier2
	player.AmmoInMagazine = defs.WeaponLibrary[defs.WeaponTier2].MagazineSize

	held := component.InputIntents{FireHeld: true}
	for i := 0; i < 60; i++ {
		step(ecs, ps, 0.016, held)
	}
	if len(ecs.PlayerBullets) < 5 {
		t.Fatalf("bullets = %d, tier2 should fire automatically", len(ecs.PlayerBullets))
	}
}
