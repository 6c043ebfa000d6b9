// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind       EnemyKind  `yaml:"-"`
	Name       string     `yaml:"name"`
	Health     int        `yaml:"health"`
	Damage     int        `yaml:"damage"`
	Speed      float64    `yaml:"speed"`
	Radius     float64    `yaml:"radius"`
	Altitude   float64    `yaml:"altitude"`    // Flyers hover above the ground plane
	DropChance float64    `yaml:"drop_chance"` // Probability of a loot roll on death
	Color      color.RGBA `yaml:"-"`
}

// EnemyLibrary maps every enemy kind to its definition.
// Populated with defaults at init and optionally overridden by LoadDefinitions.
var EnemyLibrary map[EnemyKind]EnemyDefinition

func defaultEnemyLibrary() map[EnemyKind]EnemyDefinition {
	return map[EnemyKind]EnemyDefinition{
		EnemyLightFlyer: {
			Kind: EnemyLightFlyer, Name: "Scout", Health: 25, Damage: 8,
			Speed: 5.0, Radius: 0.9, Altitude: 2.2, DropChance: 0.35,
			Color: color.RGBA{180, 180, 220, 255},
		},
		EnemyFastFlyer: {
			Kind: EnemyFastFlyer, Name: "Darter", Health: 18, Damage: 6,
			Speed: 8.0, Radius: 0.7, Altitude: 2.6, DropChance: 0.30,
			Color: color.RGBA{120, 220, 220, 255},
		},
		EnemyHeavyGround: {
			Kind: EnemyHeavyGround, Name: "Crusher", Health: 70, Damage: 16,
			Speed: 2.6, Radius: 1.4, Altitude: 0, DropChance: 0.55,
			Color: color.RGBA{200, 110, 60, 255},
		},
		EnemySuicide: {
			Kind: EnemySuicide, Name: "Volatile", Health: 12, Damage: 30,
			Speed: 7.0, Radius: 0.8, Altitude: 0, DropChance: 0.20,
			Color: color.RGBA{230, 60, 60, 255},
		},
	}
}
