package ui

import (
	"image"
	"image/color"

	"go-run-branches/internal/config"
	"go-run-branches/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button — прямоугольная кнопка с текстом по центру.
type Button struct {
	Rect      image.Rectangle
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
}

func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:      rect,
		Text:      text,
		TextColor: config.ButtonTextColor,
		BgColor:   config.ButtonColor,
	}
}

// Contains — попадает ли точка в кнопку
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; под курсором она темнее.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = render.DarkenColor(bg, 0.8)
	}
	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		bg, false)

	w, h := measureText(b.Text, config.HUDTextScale)
	x := float64(b.Rect.Min.X) + (float64(b.Rect.Dx())-w)/2
	y := float64(b.Rect.Min.Y) + (float64(b.Rect.Dy())-h)/2
	drawText(screen, b.Text, x, y, config.HUDTextScale, b.TextColor)
}
