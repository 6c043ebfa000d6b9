// internal/event/types.go
package event

const (
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен (Data: KilledInfo)
	BossSpawned   EventType = "BossSpawned"   // Босс создан
	BossDefeated  EventType = "BossDefeated"  // Босс уничтожен
	PlayerDied    EventType = "PlayerDied"    // Игрок погиб
	WaveStarted   EventType = "WaveStarted"   // Волна официально началась
	WaveCleared   EventType = "WaveCleared"   // Квота убийств выполнена, живых врагов нет
	ModeChanged   EventType = "ModeChanged"   // Сменился верхнеуровневый режим (Data: component.Mode)
	GameOver      EventType = "GameOver"      // Терминальное поражение
	Victory       EventType = "Victory"       // Терминальная победа
	MessageShown  EventType = "MessageShown"  // Одноразовое текстовое сообщение (Data: Message)
	ScreenShake   EventType = "ScreenShake"   // Запрос тряски экрана (Data: ScreenShakeCue)
	ExplosionCued EventType = "ExplosionCued" // Запрос эффекта взрыва (Data: ExplosionCueData)

	PlayerStatsUpdated EventType = "PlayerStatsUpdated" // Каждый тик (Data: PlayerStatsSnapshot)
	WaveStatusUpdated  EventType = "WaveStatusUpdated"  // При изменениях спавна/убийств (Data: WaveSnapshot)
	BossStatusUpdated  EventType = "BossStatusUpdated"  // Каждый тик при живом боссе (Data: BossSnapshot)
)
