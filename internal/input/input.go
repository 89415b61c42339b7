// Package input переводит состояние клавиш в игровые намерения и
// применяет их к игре. От ebiten не зависит: клавиши — параметр типа.
package input

// Intent — смысловое действие игрока
type Intent uint8

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentFire
	IntentStart
	IntentPause
	IntentQuit

	intentCount
)

// Keyboard — состояние клавиш за текущий тик.
type Keyboard[K comparable] interface {
	IsPressed(key K) bool
	JustPressed(key K) bool
	JustReleased(key K) bool
}

// KeyTable — какие клавиши дают какое намерение. На одно намерение
// может быть несколько клавиш.
type KeyTable[K comparable] map[Intent][]K

// Frame — намерения за один тик.
type Frame struct {
	held, pressed, released [intentCount]bool
}

// Poll опрашивает клавиатуру по таблице.
func Poll[K comparable](kb Keyboard[K], table KeyTable[K]) Frame {
	var f Frame
	for intent, keys := range table {
		if intent >= intentCount {
			continue
		}
		for _, k := range keys {
			f.held[intent] = f.held[intent] || kb.IsPressed(k)
			f.pressed[intent] = f.pressed[intent] || kb.JustPressed(k)
			f.released[intent] = f.released[intent] || kb.JustReleased(k)
		}
	}
	return f
}

func (f Frame) Held(i Intent) bool     { return i < intentCount && f.held[i] }
func (f Frame) Pressed(i Intent) bool  { return i < intentCount && f.pressed[i] }
func (f Frame) Released(i Intent) bool { return i < intentCount && f.released[i] }

// Controller — то, чем ввод управляет на игровом экране.
type Controller interface {
	Active() bool
	SetMovingLeft(moving bool)
	SetMovingRight(moving bool)
	FireBullet()
	StartGame()
}

// Command — что экрану сделать после обработки ввода.
type Command uint8

const (
	CommandNone Command = iota
	CommandPause
	CommandResume
	CommandQuit
)

// Play применяет кадр ввода к игре. Пауза возможна только в активной игре,
// старт — только в неактивной.
func Play(f Frame, c Controller) Command {
	if f.Pressed(IntentQuit) {
		return CommandQuit
	}
	if f.Pressed(IntentPause) && c.Active() {
		return CommandPause
	}

	switch {
	case f.Pressed(IntentRight):
		c.SetMovingRight(true)
	case f.Released(IntentRight):
		c.SetMovingRight(false)
	}
	switch {
	case f.Pressed(IntentLeft):
		c.SetMovingLeft(true)
	case f.Released(IntentLeft):
		c.SetMovingLeft(false)
	}
	if f.Pressed(IntentFire) {
		c.FireBullet()
	}
	if f.Pressed(IntentStart) && !c.Active() {
		c.StartGame()
	}
	return CommandNone
}

// Paused обрабатывает ввод на экране паузы.
func Paused(f Frame) Command {
	switch {
	case f.Pressed(IntentQuit):
		return CommandQuit
	case f.Pressed(IntentPause):
		return CommandResume
	}
	return CommandNone
}

// Sync выставляет флаги движения по удерживаемым клавишам: пока экран
// был неактивен, отпускания могли пройти мимо.
func Sync(f Frame, c Controller) {
	c.SetMovingLeft(f.Held(IntentLeft))
	c.SetMovingRight(f.Held(IntentRight))
}
