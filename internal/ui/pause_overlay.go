package ui

import (
	"go-run-branches/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const pauseText = "PAUSED"

// DrawPauseOverlay затемняет кадр и пишет PAUSED по центру.
func DrawPauseOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseOverlayColor, false)

	scale := config.HUDTextScale * 2
	w, h := measureText(pauseText, scale)
	drawText(screen, pauseText, (float64(b.Dx())-w)/2, (float64(b.Dy())-h)/2, scale, config.PauseTextColor)
}
