// internal/state/pause_state.go
package state

import (
	"go-run-branches/internal/input"
	"go-run-branches/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру поверх предыдущего экрана.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	switch input.Paused(pollKeys()) {
	case input.CommandQuit:
		return ebiten.Termination
	case input.CommandResume:
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.DrawPauseOverlay(screen)
}

func (s *PauseState) Exit() {}
