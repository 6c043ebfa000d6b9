// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"
	"time"

	"go-arena-fps/internal/config"
	"go-arena-fps/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type shownMessage struct {
	text    string
	shownAt time.Time
}

// HUD слушает снимки симуляции и отрисовывает интерфейс: полосы здоровья
// и выносливости, боезапас, индикатор волны, полосу босса и очередь
// сообщений повествования. HUD не читает живое состояние — только снимки.
type HUD struct {
	face font.Face
	now  func() time.Time

	player   event.PlayerStatsSnapshot
	wave     event.WaveSnapshot
	boss     event.BossSnapshot
	messages []shownMessage
}

func NewHUD(face font.Face, dispatcher *event.Dispatcher) *HUD {
	h := &HUD{face: face, now: time.Now}
	dispatcher.Subscribe(event.PlayerStatsUpdated, h)
	dispatcher.Subscribe(event.WaveStatusUpdated, h)
	dispatcher.Subscribe(event.BossStatusUpdated, h)
	dispatcher.Subscribe(event.MessageShown, h)
	return h
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerStatsUpdated:
		if s, ok := e.Data.(event.PlayerStatsSnapshot); ok {
			h.player = s
		}
	case event.WaveStatusUpdated:
		if s, ok := e.Data.(event.WaveSnapshot); ok {
			h.wave = s
		}
	case event.BossStatusUpdated:
		if s, ok := e.Data.(event.BossSnapshot); ok {
			h.boss = s
		}
	case event.MessageShown:
		if m, ok := e.Data.(event.Message); ok {
			h.messages = append(h.messages, shownMessage{text: m.Text, shownAt: h.now()})
		}
	}
}

// Reset очищает очередь сообщений между забегами.
func (h *HUD) Reset() {
	h.messages = nil
	h.boss = event.BossSnapshot{}
	h.wave = event.WaveSnapshot{}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.drawBars(screen)
	h.drawAmmo(screen)
	h.drawWave(screen)
	h.drawBoss(screen)
	h.drawSkills(screen)
	h.drawMessages(screen)
}

func (h *HUD) drawBars(screen *ebiten.Image) {
	const x, w, bh = 24, 260, 16
	y := float32(config.ScreenHeight - 70)

	vector.DrawFilledRect(screen, x, y, w, bh, config.BarBackColor, false)
	if h.player.MaxHealth > 0 {
		frac := float32(h.player.Health) / float32(h.player.MaxHealth)
		vector.DrawFilledRect(screen, x, y, w*frac, bh, config.HealthBarColor, false)
	}

	y += bh + 6
	vector.DrawFilledRect(screen, x, y, w, bh/2, config.BarBackColor, false)
	if h.player.MaxStamina > 0 {
		frac := float32(h.player.Stamina / h.player.MaxStamina)
		vector.DrawFilledRect(screen, x, y, w*frac, bh/2, config.StaminaBarColor, false)
	}

	if h.player.ShieldActive {
		text.Draw(screen, "SHIELD", h.face, x+w+12, int(y), config.ShieldBarColor)
	}
}

func (h *HUD) drawAmmo(screen *ebiten.Image) {
	line := fmt.Sprintf("%d / %d", h.player.AmmoInMagazine, h.player.ReserveAmmo)
	if h.player.Reloading {
		line = "RELOADING"
	}
	if h.player.Overcharged {
		line = "OVERCHARGE"
	}
	text.Draw(screen, line, h.face, config.ScreenWidth-160, config.ScreenHeight-54, config.HUDTextColor)
}

func (h *HUD) drawWave(screen *ebiten.Image) {
	if h.wave.Level == 0 {
		return
	}
	text.Draw(screen, "WAVE "+toRoman(h.wave.Level), h.face, 24, 36, config.HUDTextColor)
	text.Draw(screen, fmt.Sprintf("%d / %d", h.wave.Killed, h.wave.Total), h.face, 24, 60, config.HUDTextColor)
}

func (h *HUD) drawBoss(screen *ebiten.Image) {
	if !h.boss.Present {
		return
	}
	const w, bh = 480, 14
	x := float32(config.ScreenWidth-w) / 2
	y := float32(28)

	text.Draw(screen, h.boss.Name, h.face, int(x), int(y)-6, config.HUDTextColor)
	vector.DrawFilledRect(screen, x, y, w, bh, config.BarBackColor, false)
	if h.boss.MaxHealth > 0 {
		frac := float32(h.boss.Health) / float32(h.boss.MaxHealth)
		vector.DrawFilledRect(screen, x, y, w*frac, bh, config.BossBarColor, false)
	}

	// У финального босса тело неуязвимо, показываем здоровье слабой точки.
	if h.boss.Final && h.boss.WeakMaxHP > 0 {
		y += bh + 4
		vector.DrawFilledRect(screen, x, y, w, bh/2, config.BarBackColor, false)
		frac := float32(h.boss.WeakHP) / float32(h.boss.WeakMaxHP)
		vector.DrawFilledRect(screen, x, y, w*frac, bh/2, config.WeakPointColor, false)
	}
}

func (h *HUD) drawSkills(screen *ebiten.Image) {
	type slot struct {
		key      string
		unlocked bool
		cooldown float64
	}
	slots := []slot{
		{"Q", h.player.SkillQUnlocked, h.player.SkillQCooldown},
		{"Z", h.player.SkillZUnlocked, h.player.SkillZCooldown},
		{"C", h.player.ShieldUnlocked, h.player.ShieldCooldown},
		{"V", true, h.player.MeleeCooldown},
	}

	x := config.ScreenWidth/2 - len(slots)*26
	y := config.ScreenHeight - 40
	for _, s := range slots {
		if !s.unlocked {
			x += 52
			continue
		}
		label := s.key
		if s.cooldown > 0 {
			label = fmt.Sprintf("%.0f", s.cooldown)
		}
		vector.DrawFilledRect(screen, float32(x)-6, float32(y)-18, 36, 26, config.BarBackColor, false)
		text.Draw(screen, label, h.face, x, y, config.HUDTextColor)
		x += 52
	}
}

func (h *HUD) drawMessages(screen *ebiten.Image) {
	now := h.now()
	window := time.Duration(config.MessageWindow * float64(time.Second))

	alive := h.messages[:0]
	for _, m := range h.messages {
		if now.Sub(m.shownAt) < window {
			alive = append(alive, m)
		}
	}
	h.messages = alive

	y := 120
	for _, m := range h.messages {
		text.Draw(screen, m.text, h.face, config.ScreenWidth/2-len(m.text)*4, y, config.MessageColor)
		y += 28
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
