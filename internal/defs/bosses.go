// internal/defs/bosses.go
package defs

// BossDefinition holds the static data for one boss tier.
type BossDefinition struct {
	Tier           int     `yaml:"tier"`
	FallbackName   string  `yaml:"fallback_name"`
	FallbackLine   string  `yaml:"fallback_line"`
	Health         int     `yaml:"health"`
	Damage         int     `yaml:"damage"`
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	// WeakPointHealth is nonzero only for the final tier: the body is
	// invulnerable and all damage routes to the weak point.
	WeakPointHealth int `yaml:"weak_point_health"`
}

// BossLibrary maps tier (1..5) to its definition.
var BossLibrary map[int]BossDefinition

func defaultBossLibrary() map[int]BossDefinition {
	return map[int]BossDefinition{
		1: {Tier: 1, FallbackName: "Warden", FallbackLine: "The arena claims another.",
			Health: 600, Damage: 15, Speed: 2.2, Radius: 3.0, AttackCooldown: 2.2},
		2: {Tier: 2, FallbackName: "Twin Maw", FallbackLine: "You will not leave here.",
			Health: 1100, Damage: 18, Speed: 2.6, Radius: 3.0, AttackCooldown: 2.4},
		3: {Tier: 3, FallbackName: "Quake Lord", FallbackLine: "The ground itself hates you.",
			Health: 2000, Damage: 22, Speed: 2.8, Radius: 3.2, AttackCooldown: 2.4},
		4: {Tier: 4, FallbackName: "Ion Tyrant", FallbackLine: "Burn in the light.",
			Health: 3200, Damage: 26, Speed: 3.0, Radius: 3.2, AttackCooldown: 2.2},
		5: {Tier: 5, FallbackName: "The Core", FallbackLine: "I am the end of all waves.",
			Health: 5000, Damage: 30, Speed: 0, Radius: 3.6, AttackCooldown: 1.8,
			WeakPointHealth: 1200},
	}
}
