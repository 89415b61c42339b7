package state

import (
	game "go-run-branches/internal/app"
	"go-run-branches/internal/input"
	"go-run-branches/internal/ui"
	"go-run-branches/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState — основной экран: ввод, тик игры, отрисовка.
type PlayState struct {
	sm         *StateMachine
	game       *game.Game
	renderer   *render.SpriteRenderer
	hud        *ui.HUD
	playButton *ui.Button
}

var _ State = (*PlayState)(nil)

func NewPlayState(sm *StateMachine, g *game.Game, renderer *render.SpriteRenderer, hud *ui.HUD) *PlayState {
	return &PlayState{
		sm:         sm,
		game:       g,
		renderer:   renderer,
		hud:        hud,
		playButton: ui.NewButton(g.PlayButton, "Play"),
	}
}

func (s *PlayState) Enter() {
	input.Sync(pollKeys(), s.game)
}

func (s *PlayState) Update(deltaTime float64) error {
	switch input.Play(pollKeys(), s.game) {
	case input.CommandQuit:
		return ebiten.Termination
	case input.CommandPause:
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.game.HandleClick(ebiten.CursorPosition())
	}

	s.game.Update(deltaTime)
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.ECS)
	s.hud.Draw(screen, s.game.Scoreboard)
	if !s.game.Active() {
		s.playButton.Draw(screen)
	}
}

func (s *PlayState) Exit() {}
