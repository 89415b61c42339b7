package ui

import (
	"go-run-branches/internal/app"
	"go-run-branches/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD рисует счёт, рекорд, уровень и оставшиеся жизни.
type HUD struct {
	screenWidth int
	livesIcon   *ebiten.Image
}

func NewHUD(screenWidth int, livesIcon *ebiten.Image) *HUD {
	return &HUD{screenWidth: screenWidth, livesIcon: livesIcon}
}

// Draw: счёт — справа сверху, рекорд — по центру, уровень — под счётом,
// жизни — иконками кота слева сверху.
func (h *HUD) Draw(screen *ebiten.Image, sb *app.Scoreboard) {
	scale := config.HUDTextScale
	margin := float64(config.HUDMargin)

	scoreW, scoreH := measureText(sb.ScoreText, scale)
	drawText(screen, sb.ScoreText, float64(h.screenWidth)-margin-scoreW, margin, scale, config.HUDTextColor)

	highW, _ := measureText(sb.HighScoreText, scale)
	drawText(screen, sb.HighScoreText, (float64(h.screenWidth)-highW)/2, margin, scale, config.HUDTextColor)

	levelW, _ := measureText(sb.LevelText, scale)
	drawText(screen, sb.LevelText, float64(h.screenWidth)-margin-levelW, margin+scoreH+10, scale, config.HUDTextColor)

	h.drawLives(screen, sb.CatsLeft)
}

func (h *HUD) drawLives(screen *ebiten.Image, catsLeft int) {
	if h.livesIcon == nil {
		return
	}
	w := h.livesIcon.Bounds().Dx()
	for i := 0; i < catsLeft; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(config.LivesIconGap+i*w), float64(config.LivesIconGap))
		screen.DrawImage(h.livesIcon, op)
	}
}
