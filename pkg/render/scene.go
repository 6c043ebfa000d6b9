// pkg/render/scene.go
package render

import (
	"image/color"
	"math"

	"go-arena-fps/internal/component"
	"go-arena-fps/internal/config"
	"go-arena-fps/internal/entity"
	"go-arena-fps/internal/event"
	"go-arena-fps/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const worldScale = 9.0 // Пикселей на мировую единицу

// SceneRenderer рисует схемный вид арены сверху, с камерой на игроке.
// Тряска экрана накапливается по событиям и затухает сама.
type SceneRenderer struct {
	ecs *entity.ECS
	rng shakeSource

	shakeTime      float64
	shakeIntensity float64
}

type shakeSource interface {
	Spread(max float64) float64
}

func NewSceneRenderer(ecs *entity.ECS, dispatcher *event.Dispatcher, rng shakeSource) *SceneRenderer {
	r := &SceneRenderer{ecs: ecs, rng: rng}
	dispatcher.Subscribe(event.ScreenShake, r)
	return r
}

func (r *SceneRenderer) OnEvent(e event.Event) {
	cue, ok := e.Data.(event.ScreenShakeCue)
	if !ok {
		return
	}
	if cue.Intensity > r.shakeIntensity {
		r.shakeIntensity = cue.Intensity
	}
	if cue.Duration > r.shakeTime {
		r.shakeTime = cue.Duration
	}
}

func (r *SceneRenderer) Update(deltaTime float64) {
	if r.shakeTime > 0 {
		r.shakeTime -= deltaTime
		if r.shakeTime <= 0 {
			r.shakeIntensity = 0
		}
	}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	center := vec.Vec3{}
	if pos, ok := r.ecs.Positions[r.ecs.PlayerID]; ok {
		center = pos.Pos
	}

	offX := float64(config.ScreenWidth) / 2
	offY := float64(config.ScreenHeight) / 2
	if r.shakeTime > 0 {
		offX += r.rng.Spread(r.shakeIntensity * 8)
		offY += r.rng.Spread(r.shakeIntensity * 8)
	}

	toScreen := func(p vec.Vec3) (float32, float32) {
		return float32(offX + (p.X-center.X)*worldScale),
			float32(offY + (p.Z-center.Z)*worldScale)
	}

	r.drawGround(screen, toScreen)
	r.drawHazards(screen, toScreen)
	r.drawPickupsAndBullets(screen, toScreen)
	r.drawEnemies(screen, toScreen)
	r.drawBoss(screen, toScreen)
	r.drawDrone(screen, toScreen)
	r.drawPlayer(screen, toScreen)
	r.drawExplosions(screen, toScreen)
}

type project func(vec.Vec3) (float32, float32)

func (r *SceneRenderer) drawGround(screen *ebiten.Image, toScreen project) {
	x, y := toScreen(vec.Vec3{})
	vector.DrawFilledCircle(screen, x, y, float32(config.SpawnRingRadius*worldScale), config.GroundColor, true)
}

func (r *SceneRenderer) drawPlayer(screen *ebiten.Image, toScreen project) {
	pos, ok := r.ecs.Positions[r.ecs.PlayerID]
	if !ok {
		return
	}
	x, y := toScreen(pos.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(config.PlayerRadius*worldScale), config.PlayerColor, true)

	// Линия взгляда
	if orient, ok := r.ecs.Orientations[r.ecs.PlayerID]; ok {
		dir := vec.FromYaw(orient.Yaw)
		tx, ty := toScreen(pos.Pos.Add(dir.Scale(2.2)))
		vector.StrokeLine(screen, x, y, tx, ty, 2, config.HUDTextColor, true)
	}
}

func (r *SceneRenderer) drawEnemies(screen *ebiten.Image, toScreen project) {
	for id, enemy := range r.ecs.Enemies {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		c := config.EnemyFallback
		if rend, ok := r.ecs.Renderables[id]; ok {
			c = rend.Color
		}
		if _, flashing := r.ecs.DamageFlashes[id]; flashing {
			c = color.RGBA{255, 255, 255, 255}
		}
		x, y := toScreen(pos.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(enemy.Radius*worldScale), c, true)
	}
}

func (r *SceneRenderer) drawBoss(screen *ebiten.Image, toScreen project) {
	boss := r.ecs.Boss
	if boss == nil {
		return
	}
	x, y := toScreen(boss.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(boss.Radius*worldScale), config.BossBarColor, true)

	if wp := boss.WeakPoint; wp != nil {
		wx, wy := toScreen(wp.Pos)
		vector.DrawFilledCircle(screen, wx, wy, float32(wp.Radius*worldScale), config.WeakPointColor, true)
	}
}

func (r *SceneRenderer) drawDrone(screen *ebiten.Image, toScreen project) {
	drone := r.ecs.Drone
	if drone == nil {
		return
	}
	x, y := toScreen(drone.Pos)
	vector.DrawFilledCircle(screen, x, y, 0.5*worldScale, config.DroneColor, true)
}

func (r *SceneRenderer) drawPickupsAndBullets(screen *ebiten.Image, toScreen project) {
	for id := range r.ecs.Pickups {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		c := config.AmmoPickupColor
		if rend, ok := r.ecs.Renderables[id]; ok {
			c = rend.Color
		}
		x, y := toScreen(pos.Pos)
		vector.DrawFilledCircle(screen, x, y, 0.45*worldScale, c, true)
	}

	drawBullet := func(at vec.Vec3, vel vec.Vec3, c color.RGBA, laser bool) {
		x, y := toScreen(at)
		if laser {
			tail := at.Sub(vel.Normalized().Scale(config.LaserLength))
			tx, ty := toScreen(tail)
			vector.StrokeLine(screen, tx, ty, x, y, 3, c, true)
			return
		}
		vector.DrawFilledCircle(screen, x, y, 0.2*worldScale, c, true)
	}

	for id, b := range r.ecs.PlayerBullets {
		if pos, ok := r.ecs.Positions[id]; ok {
			c := config.PlayerBulletColor
			if rend, ok := r.ecs.Renderables[id]; ok {
				c = rend.Color
			}
			drawBullet(pos.Pos, b.Vel, c, b.IsLaser)
		}
	}
	for id, b := range r.ecs.BossBullets {
		if pos, ok := r.ecs.Positions[id]; ok {
			drawBullet(pos.Pos, b.Vel, config.BossBulletColor, b.IsLaser)
		}
	}
	for id, b := range r.ecs.DroneBullets {
		if pos, ok := r.ecs.Positions[id]; ok {
			drawBullet(pos.Pos, b.Vel, config.DroneBulletColor, false)
		}
	}
}

func (r *SceneRenderer) drawHazards(screen *ebiten.Image, toScreen project) {
	for _, h := range r.ecs.Hazards {
		switch h.Kind {
		case component.HazardShockwave, component.HazardRing:
			x, y := toScreen(h.Center)
			vector.StrokeCircle(screen, x, y, float32(h.Radius*worldScale),
				float32(h.Band*worldScale), config.BossBulletColor, true)
		case component.HazardBeam:
			tip := h.Center.Add(vec.FromYaw(h.Angle).Scale(h.Length))
			x, y := toScreen(h.Center)
			tx, ty := toScreen(tip)
			vector.StrokeLine(screen, x, y, tx, ty, float32(h.Width*worldScale), config.LaserColor, true)
		}
	}
}

func (r *SceneRenderer) drawExplosions(screen *ebiten.Image, toScreen project) {
	for id, ex := range r.ecs.Explosions {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		progress := ex.Timer / ex.Duration
		x, y := toScreen(pos.Pos)

		radius := float32(progress * ex.MaxRadius * worldScale)
		core := ex.Core
		core.A = uint8(255 * (1 - progress))
		vector.DrawFilledCircle(screen, x, y, radius, core, true)

		// Искры по окружности
		for i := 0; i < ex.Particles; i++ {
			angle := float64(i) / float64(ex.Particles) * 2 * math.Pi
			px := x + float32(math.Cos(angle))*radius*1.2
			py := y + float32(math.Sin(angle))*radius*1.2
			vector.DrawFilledCircle(screen, px, py, 2, ex.Spark, true)
		}
	}
}
