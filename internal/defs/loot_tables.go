// internal/defs/loot_tables.go
package defs

// SpawnEntry is one row in a wave spawn table: an enemy kind and its
// relative weight for the weighted random choice.
type SpawnEntry struct {
	Kind   EnemyKind `yaml:"kind"`
	Weight int       `yaml:"weight"`
}

// SpawnTables defines the spawn weights per wave level. Levels above the
// highest key reuse the last table. Lower levels favor weaker kinds; tougher
// kinds enter later with smaller but nonzero weight.
var SpawnTables map[int][]SpawnEntry

func defaultSpawnTables() map[int][]SpawnEntry {
	return map[int][]SpawnEntry{
		1: {
			{Kind: EnemyLightFlyer, Weight: 80},
			{Kind: EnemyFastFlyer, Weight: 20},
		},
		2: {
			{Kind: EnemyLightFlyer, Weight: 55},
			{Kind: EnemyFastFlyer, Weight: 30},
			{Kind: EnemyHeavyGround, Weight: 15},
		},
		3: {
			{Kind: EnemyLightFlyer, Weight: 40},
			{Kind: EnemyFastFlyer, Weight: 30},
			{Kind: EnemyHeavyGround, Weight: 20},
			{Kind: EnemySuicide, Weight: 10},
		},
		4: {
			{Kind: EnemyLightFlyer, Weight: 30},
			{Kind: EnemyFastFlyer, Weight: 30},
			{Kind: EnemyHeavyGround, Weight: 25},
			{Kind: EnemySuicide, Weight: 15},
		},
		5: {
			{Kind: EnemyLightFlyer, Weight: 20},
			{Kind: EnemyFastFlyer, Weight: 30},
			{Kind: EnemyHeavyGround, Weight: 30},
			{Kind: EnemySuicide, Weight: 20},
		},
	}
}

// SpawnTableFor returns the spawn table for a wave level, falling back to the
// highest defined level for later waves.
func SpawnTableFor(level int) []SpawnEntry {
	if table, ok := SpawnTables[level]; ok {
		return table
	}
	best := 0
	for l := range SpawnTables {
		if l > best && l < level {
			best = l
		}
	}
	return SpawnTables[best]
}

// LootEntry is one row in the loot table: a pickup kind and its weight.
type LootEntry struct {
	Kind   PickupKind `yaml:"kind"`
	Weight int        `yaml:"weight"`
}

// LootTable is the weighted list of pickups an enemy can drop. Ammo is more
// likely than health.
var LootTable []LootEntry

func defaultLootTable() []LootEntry {
	return []LootEntry{
		{Kind: PickupAmmo, Weight: 70},
		{Kind: PickupHealth, Weight: 30},
	}
}
