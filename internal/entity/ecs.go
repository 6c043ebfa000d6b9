// internal/entity/ecs.go
package entity

import (
	"go-arena-fps/internal/component"
	"go-arena-fps/internal/types"
)

// ECS владеет всеми переходными коллекциями симуляции. Вставка и удаление —
// O(1); порядок обхода карт не несёт смысла, запросы по области всегда
// считаются от расстояния. Идентификаторы монотонно растут, поэтому
// устаревший ID никогда не найдёт чужой компонент.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions    map[types.EntityID]*component.Position
	Orientations map[types.EntityID]*component.Orientation
	Healths      map[types.EntityID]*component.Health
	Renderables  map[types.EntityID]*component.Renderable

	Enemies      map[types.EntityID]*component.Enemy
	PlayerBullets map[types.EntityID]*component.PlayerBullet
	BossBullets  map[types.EntityID]*component.BossBullet
	DroneBullets map[types.EntityID]*component.DroneBullet
	Pickups      map[types.EntityID]*component.Pickup
	Hazards      map[types.EntityID]*component.Hazard
	Explosions   map[types.EntityID]*component.Explosion
	DamageFlashes map[types.EntityID]*component.DamageFlash

	// Одиночные слоты: игрок, босс, волна и режим принадлежат контексту
	// симуляции, но живут здесь же, чтобы системы видели их напрямую.
	PlayerID types.EntityID
	Player   *component.PlayerState
	Boss     *component.Boss
	Wave     *component.Wave
	Drone    *component.Drone
	Mode     *component.ModeState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Orientations:  make(map[types.EntityID]*component.Orientation),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		PlayerBullets: make(map[types.EntityID]*component.PlayerBullet),
		BossBullets:   make(map[types.EntityID]*component.BossBullet),
		DroneBullets:  make(map[types.EntityID]*component.DroneBullet),
		Pickups:       make(map[types.EntityID]*component.Pickup),
		Hazards:       make(map[types.EntityID]*component.Hazard),
		Explosions:    make(map[types.EntityID]*component.Explosion),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Mode:          &component.ModeState{Current: component.ModeStart},
	}
}

// Reset очищает реестр для нового забега. Карты пересоздаются, но
// NextID продолжает расти: идентификаторы прошлых сессий остаются
// навсегда устаревшими.
func (ecs *ECS) Reset() {
	fresh := NewECS()
	fresh.NextID = ecs.NextID
	fresh.Mode = ecs.Mode
	*ecs = *fresh
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности. Повторный вызов для уже
// удалённого ID безопасен и ничего не делает.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Orientations, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.PlayerBullets, id)
	delete(ecs.BossBullets, id)
	delete(ecs.DroneBullets, id)
	delete(ecs.Pickups, id)
	delete(ecs.Hazards, id)
	delete(ecs.Explosions, id)
	delete(ecs.DamageFlashes, id)
}

// AliveEnemies возвращает количество живых врагов.
func (ecs *ECS) AliveEnemies() int {
	return len(ecs.Enemies)
}
