// internal/defs/weapons.go
package defs

// WeaponDefinition holds the static data for one weapon tier.
type WeaponDefinition struct {
	Tier         WeaponTier `yaml:"-"`
	Name         string     `yaml:"name"`
	Damage       int        `yaml:"damage"`
	MagazineSize int        `yaml:"magazine_size"`
	FireCooldown float64    `yaml:"fire_cooldown"`
	ReloadTime   float64    `yaml:"reload_time"`
	Spread       float64    `yaml:"spread"` // Max random deviation in radians
	PickupAmmo   int        `yaml:"pickup_ammo"`
	// Automatic weapons fire while the trigger is held; semi-auto weapons
	// require the trigger to be released between shots. Tier 2 loses its
	// automatic fire in New Game+.
	Automatic bool `yaml:"automatic"`
	Explosive bool `yaml:"explosive"`
	Laser     bool `yaml:"laser"`
}

// WeaponLibrary maps weapon tier to its definition.
var WeaponLibrary map[WeaponTier]WeaponDefinition

func defaultWeaponLibrary() map[WeaponTier]WeaponDefinition {
	return map[WeaponTier]WeaponDefinition{
		WeaponTier1: {
			Tier: WeaponTier1, Name: "Pulse Rifle", Damage: 10, MagazineSize: 30,
			FireCooldown: 0.14, ReloadTime: 1.6, Spread: 0.030, PickupAmmo: 24,
			Automatic: false,
		},
		WeaponTier2: {
			Tier: WeaponTier2, Name: "Arc Cannon", Damage: 15, MagazineSize: 24,
			FireCooldown: 0.09, ReloadTime: 1.8, Spread: 0.015, PickupAmmo: 18,
			Automatic: true, Explosive: true,
		},
	}
}
