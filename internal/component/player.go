// internal/component/player.go
package component

import "go-arena-fps/internal/defs"

// SkillState — состояние мгновенного навыка (лечение).
type SkillState struct {
	Unlocked bool
	Cooldown float64
}

// TimedSkillState — состояние навыка с длительностью (перегрузка, щит).
// Перезарядка стартует сразу в момент активации и тикает независимо
// от оставшейся длительности.
type TimedSkillState struct {
	Unlocked bool
	Cooldown float64
	Active   bool
	TimeLeft float64
}

// MeleeState — состояние удара ближнего боя. Одновременно может
// существовать не больше одного замаха.
type MeleeState struct {
	Cooldown  float64
	Attacking bool
	TimeLeft  float64 // Оставшееся время замаха
	HitDone   bool    // Проверка попадания уже выполнена в этом замахе
}

// PlayerState хранит всё боевое состояние игрока.
// Инварианты: здоровье и выносливость зажаты в [0, max]; пока Reloading —
// прицеливание сброшено; щит полностью отменяет входящий урон.
type PlayerState struct {
	Health     int
	MaxHealth  int
	Stamina    float64
	MaxStamina float64

	WeaponTier     defs.WeaponTier
	Tier2Unlocked  bool
	AmmoInMagazine int
	ReserveAmmo    int
	Reloading      bool
	ReloadTimer    float64

	Aiming    bool
	Sprinting bool

	Melee  MeleeState
	SkillQ SkillState      // Лечение
	SkillZ TimedSkillState // Перегрузка
	Shield TimedSkillState

	DroneUnlocked bool

	// Вертикальное движение: простой интегратор с постоянной гравитацией.
	VerticalVel float64
	Grounded    bool

	// Метки симуляционного времени для кулдауна выстрела и окна неуязвимости.
	LastShotTime float64
	LastHitTime  float64

	// Для полуавтоматического оружия: спусковой крючок должен быть
	// отпущен между выстрелами.
	TriggerHeld bool
}
