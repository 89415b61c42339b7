package state

import (
	"go-run-branches/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyTable = input.KeyTable[ebiten.Key]{
	input.IntentLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.IntentRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.IntentFire:  {ebiten.KeyW, ebiten.KeyArrowUp},
	input.IntentStart: {ebiten.KeySpace},
	input.IntentPause: {ebiten.KeyP},
	input.IntentQuit:  {ebiten.KeyEscape},
}

// keyboard — клавиатура ebiten для input.Poll
type keyboard struct{}

func (keyboard) IsPressed(k ebiten.Key) bool    { return ebiten.IsKeyPressed(k) }
func (keyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (keyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

func pollKeys() input.Frame {
	return input.Poll[ebiten.Key](keyboard{}, keyTable)
}
