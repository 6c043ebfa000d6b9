// internal/event/snapshots.go
package event

import (
	"image/color"

	"go-arena-fps/internal/defs"
	"go-arena-fps/pkg/vec"
)

// Снимки — значения, а не ссылки: слой представления никогда не получает
// указателей внутрь живого состояния симуляции.

// PlayerStatsSnapshot — снимок состояния игрока, публикуется каждый тик.
type PlayerStatsSnapshot struct {
	Health     int
	MaxHealth  int
	Stamina    float64
	MaxStamina float64

	WeaponTier     defs.WeaponTier
	AmmoInMagazine int
	ReserveAmmo    int
	Reloading      bool
	Aiming         bool

	SkillQUnlocked bool
	SkillQCooldown float64
	SkillZUnlocked bool
	SkillZCooldown float64
	Overcharged    bool
	ShieldUnlocked bool
	ShieldCooldown float64
	ShieldActive   bool
	MeleeCooldown  float64
	DroneUnlocked  bool
}

// WaveSnapshot — снимок прогресса волны.
type WaveSnapshot struct {
	Level  int
	Killed int
	Total  int
}

// BossSnapshot — снимок босса. Present=false означает «босса нет»
// и передаётся один раз при его исчезновении.
type BossSnapshot struct {
	Present   bool
	Name      string
	Health    int
	MaxHealth int
	Final     bool
	WeakHP    int
	WeakMaxHP int
}

// KilledInfo — данные события EnemyKilled.
type KilledInfo struct {
	Kind defs.EnemyKind
	Pos  vec.Vec3
}

// Message — одноразовое текстовое сообщение. ID монотонно растёт, чтобы
// получатель мог различать повторные тексты.
type Message struct {
	ID   uint64
	Text string
}

// ScreenShakeCue — запрос тряски экрана.
type ScreenShakeCue struct {
	Intensity float64
	Duration  float64
}

// ExplosionCueData — запрос визуального эффекта взрыва.
type ExplosionCueData struct {
	Pos       vec.Vec3
	Core      color.RGBA
	Spark     color.RGBA
	Particles int
}
