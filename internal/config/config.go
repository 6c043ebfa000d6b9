// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// --- Игрок ---
	PlayerMaxHealth   = 100
	PlayerMaxStamina  = 100.0
	PlayerWalkSpeed   = 6.0
	SprintMultiplier  = 1.6
	AimSpeedFactor    = 0.5 // Замедление при прицеливании
	StaminaDrainRate  = 20.0
	StaminaRegenRate  = 10.0
	Gravity           = 25.0
	JumpImpulse       = 9.0
	PlayerRadius      = 1.0
	PlayerEyeHeight   = 1.7
	StartingReserve   = 90 // Запас патронов на старте забега
	HitImmunityWindow = 0.8 // Окно неуязвимости после контактного урона

	// --- Ближний бой ---
	MeleeCooldown  = 1.2
	MeleeSwingTime = 0.45
	MeleeHitMoment = 0.18 // Момент проверки попадания внутри замаха
	MeleeRange     = 2.6
	MeleeConeCos   = 0.5 // Косинус половины угла конуса удара
	MeleeDamage    = 40

	// --- Навыки ---
	HealAmount       = 35
	HealCooldown     = 20.0
	OverchargeTime   = 6.0
	OverchargeCD     = 25.0
	OverchargeDamage = 22
	OverchargeFireCD = 0.07
	ShieldDuration   = 4.0
	ShieldCooldown   = 30.0

	// --- Разблокировки по волнам ---
	SkillsUnlockWave = 2
	ShieldUnlockWave = 3
	WeaponUnlockWave = 3
	DroneUnlockWave  = 4

	// --- Пули ---
	PlayerBulletSpeed = 70.0
	BossBulletSpeed   = 24.0
	DroneBulletSpeed  = 50.0
	BulletMaxRange    = 120.0 // Дальше этого расстояния от игрока пуля уничтожается
	BulletHitRadius   = 0.6
	LaserLength       = 6.0 // Длина вытянутого теста попадания лазера
	ExplosionRadius   = 4.0

	// --- Волны ---
	WaveKillBase        = 10
	WaveKillPerLevel    = 8
	BaseSpawnInterval   = 1.5
	NGPlusSpawnInterval = 1.0
	MinSpawnInterval    = 0.5
	SpawnIntervalStep   = 0.1
	MaxConcurrent       = 12
	NGPlusMaxConcurrent = 15
	MaxLevel            = 5
	SpawnRingRadius     = 38.0 // Враги появляются на кольце вокруг игрока
	SuicideBlastRadius  = 4.0

	// --- Босс ---
	BossIntroWindow     = 3.0 // Время показа представления босса
	NextWaveDelay       = 4.0 // Пауза между смертью босса и следующей волной
	VictoryDelay        = 3.0
	WeakPointRadius     = 1.2
	WeakPointOrbit      = 6.0
	WeakPointOrbitSpeed = 0.12 // Оборотов пути в секунду (progress/с)
	RingBurstShots      = 20
	RingBurstStagger    = 0.05 // Задержка между выстрелами кольцевого залпа
	BeamLength          = 26.0
	BeamWidth           = 1.6
	BeamDuration        = 5.0
	BeamRotationSpeed   = 0.7 // рад/с
	BeamDamagePerSec    = 25.0
	ShockwaveSpeed      = 9.0
	ShockwaveBand       = 1.2 // Толщина поражающего кольца
	ShockwaveMaxRadius  = 22.0

	// --- Дрон ---
	DroneRange        = 18.0
	DroneFireInterval = 0.5
	DroneDamage       = 8
	DroneOffsetUp     = 2.4
	DroneOffsetBack   = 1.8
	DroneFollowSpeed  = 5.0 // Коэффициент сглаживания подлёта

	// --- Подбираемые предметы ---
	PickupRadius     = 2.0
	HealthPickupHeal = 25

	// --- Сообщения ---
	MessageWindow = 2.0 // Время показа одного сообщения повествования

	// --- Множители New Game+ ---
	NGPlusStatScale = 1.5

	// --- Визуальные эффекты ---
	ExplosionParticles      = 24
	ExplosionEffectDuration = 0.6
	ExplosionEffectRadius   = 3.0
	ShakeOnHit         = 0.5
	ShakeOnExplosion   = 0.8
)

var (
	BackgroundColor = color.RGBA{16, 16, 24, 255}
	GroundColor     = color.RGBA{34, 38, 46, 255}
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 255}
	StaminaBarColor = color.RGBA{90, 200, 120, 255}
	ShieldBarColor  = color.RGBA{80, 160, 255, 255}
	BossBarColor    = color.RGBA{200, 40, 120, 255}
	WeakPointColor  = color.RGBA{255, 215, 0, 255}
	MessageColor    = color.RGBA{255, 255, 180, 255}
	BarBackColor    = color.RGBA{10, 10, 14, 200}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	AmmoPickupColor   = color.RGBA{255, 215, 0, 255}
	HealthPickupColor = color.RGBA{90, 220, 90, 255}
	DroneColor        = color.RGBA{140, 200, 255, 255}
	DroneBulletColor  = color.RGBA{120, 220, 255, 255}
	PlayerBulletColor = color.RGBA{255, 240, 160, 255}
	BossBulletColor   = color.RGBA{255, 80, 80, 255}
	LaserColor        = color.RGBA{120, 255, 200, 255}
	EnemyFallback     = color.RGBA{200, 80, 80, 255}
)
