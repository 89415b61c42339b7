package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — растровый шрифт 7x13, масштабируется при отрисовке
var DefaultFace = text.NewGoXFace(basicfont.Face7x13)

// drawText рисует строку с левым верхним углом в (x, y).
func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, DefaultFace, op)
}

// measureText — размер строки с учётом масштаба
func measureText(s string, scale float64) (float64, float64) {
	w, h := text.Measure(s, DefaultFace, 0)
	return w * scale, h * scale
}
