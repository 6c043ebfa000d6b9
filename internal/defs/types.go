// internal/defs/types.go
package defs

// EnemyKind is the closed set of enemy types.
type EnemyKind int

const (
	EnemyLightFlyer EnemyKind = iota
	EnemyFastFlyer
	EnemyHeavyGround
	EnemySuicide
)

var enemyKindNames = map[string]EnemyKind{
	"light_flyer":  EnemyLightFlyer,
	"fast_flyer":   EnemyFastFlyer,
	"heavy_ground": EnemyHeavyGround,
	"suicide":      EnemySuicide,
}

func (k EnemyKind) String() string {
	switch k {
	case EnemyLightFlyer:
		return "light_flyer"
	case EnemyFastFlyer:
		return "fast_flyer"
	case EnemyHeavyGround:
		return "heavy_ground"
	case EnemySuicide:
		return "suicide"
	}
	return "unknown"
}

// PickupKind is the closed set of pickup types.
type PickupKind int

const (
	PickupAmmo PickupKind = iota
	PickupHealth
)

// WeaponTier selects one of the two weapon configurations.
type WeaponTier int

const (
	WeaponTier1 WeaponTier = iota + 1
	WeaponTier2
)
