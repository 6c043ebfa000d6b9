// internal/component/wave.go
package component

// Wave — состояние текущей волны. Создаётся заново при старте волны и
// отбрасывается, когда начинается последовательность босса.
type Wave struct {
	Level         int
	TotalToKill   int
	Killed        int
	Spawned       int
	SpawnInterval float64
	SpawnTimer    float64
	MaxConcurrent int
	// Спавн включается только после того, как истечёт окно показа
	// последнего сообщения повествования.
	SpawnEnabled bool
}
