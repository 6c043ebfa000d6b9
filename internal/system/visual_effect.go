// internal/system/visual_effect.go
package system

import (
	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
)

// VisualEffectSystem управляет косметическими эффектами: вспышками урона
// и взрывами. Взрывы создаются по событию, чтобы модель урона не знала
// про отрисовку.
type VisualEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs, eventDispatcher: dispatcher}
	dispatcher.Subscribe(event.ExplosionCued, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	cue, ok := e.Data.(event.ExplosionCueData)
	if !ok {
		return
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Pos: cue.Pos}
	s.ecs.Explosions[id] = &component.Explosion{
		Duration:  config.ExplosionEffectDuration,
		MaxRadius: config.ExplosionEffectRadius,
		Core:      cue.Core,
		Spark:     cue.Spark,
		Particles: cue.Particles,
	}
}

// Update обновляет таймеры всех активных эффектов.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, explosion := range s.ecs.Explosions {
		explosion.Timer += deltaTime
		if explosion.Timer >= explosion.Duration {
			s.ecs.RemoveEntity(id)
		}
	}
}
