// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func init() {
	ResetToDefaults()
}

// ResetToDefaults restores every library to its built-in content.
func ResetToDefaults() {
	EnemyLibrary = defaultEnemyLibrary()
	BossLibrary = defaultBossLibrary()
	WeaponLibrary = defaultWeaponLibrary()
	SpawnTables = defaultSpawnTables()
	LootTable = defaultLootTable()
}

// definitionsFile mirrors the layout of the optional YAML tuning file.
// Every section is optional; present entries override the built-in defaults.
type definitionsFile struct {
	Enemies map[string]EnemyDefinition    `yaml:"enemies"`
	Bosses  map[int]BossDefinition        `yaml:"bosses"`
	Weapons map[int]WeaponDefinition      `yaml:"weapons"`
	Spawns  map[int][]spawnEntryFile      `yaml:"spawn_tables"`
	Loot    []lootEntryFile               `yaml:"loot_table"`
}

type spawnEntryFile struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

type lootEntryFile struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// LoadDefinitions reads the YAML tuning file and overlays it onto the
// built-in libraries. Absent file or sections leave the defaults untouched.
func LoadDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}

	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	for name, def := range file.Enemies {
		kind, ok := enemyKindNames[name]
		if !ok {
			return fmt.Errorf("unknown enemy kind %q", name)
		}
		base := EnemyLibrary[kind]
		def.Kind = kind
		def.Color = base.Color
		EnemyLibrary[kind] = def
	}

	for tier, def := range file.Bosses {
		if _, ok := BossLibrary[tier]; !ok {
			return fmt.Errorf("unknown boss tier %d", tier)
		}
		def.Tier = tier
		BossLibrary[tier] = def
	}

	for tier, def := range file.Weapons {
		t := WeaponTier(tier)
		if _, ok := WeaponLibrary[t]; !ok {
			return fmt.Errorf("unknown weapon tier %d", tier)
		}
		def.Tier = t
		WeaponLibrary[t] = def
	}

	for level, rows := range file.Spawns {
		table := make([]SpawnEntry, 0, len(rows))
		for _, row := range rows {
			kind, ok := enemyKindNames[row.Kind]
			if !ok {
				return fmt.Errorf("unknown enemy kind %q in spawn table %d", row.Kind, level)
			}
			table = append(table, SpawnEntry{Kind: kind, Weight: row.Weight})
		}
		SpawnTables[level] = table
	}

	if len(file.Loot) > 0 {
		table := make([]LootEntry, 0, len(file.Loot))
		for _, row := range file.Loot {
			switch row.Kind {
			case "ammo":
				table = append(table, LootEntry{Kind: PickupAmmo, Weight: row.Weight})
			case "health":
				table = append(table, LootEntry{Kind: PickupHealth, Weight: row.Weight})
			default:
				return fmt.Errorf("unknown pickup kind %q in loot table", row.Kind)
			}
		}
		LootTable = table
	}

	return nil
}
