// internal/component/mode.go
package component

// Mode — верхнеуровневый режим симуляции.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeWaveTransition
	ModeBossFight
	ModePaused
	ModeGameOver
	ModeVictory
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start_screen"
	case ModePlaying:
		return "playing"
	case ModeWaveTransition:
		return "wave_transition"
	case ModeBossFight:
		return "boss_fight"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	case ModeVictory:
		return "victory"
	}
	return "unknown"
}

// ModeState — текущий режим плюс режим, записанный в момент паузы,
// чтобы выход из паузы вернул именно его.
type ModeState struct {
	Current     Mode
	BeforePause Mode
}
