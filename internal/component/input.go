// internal/component/input.go
package component

// InputIntents — дискретные намерения игрока на один тик. Слой ввода
// заполняет структуру из состояния клавиатуры и мыши; симуляция никогда
// не опрашивает устройства напрямую.
type InputIntents struct {
	MoveForward bool
	MoveBack    bool
	MoveLeft    bool
	MoveRight   bool

	Sprint bool
	Jump   bool

	FireHeld bool // Основная кнопка удерживается
	AimHeld  bool // Вторичная кнопка удерживается

	Reload      bool // Фронты нажатий (одно срабатывание на нажатие)
	Melee       bool
	SkillQ      bool
	SkillZ      bool
	ShieldSkill bool

	LookYaw   float64 // Относительное смещение мыши за тик
	LookPitch float64
}
