// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние. Ошибка (например ebiten.Termination)
// пробрасывается наверх в ebiten.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
