package render

import "image/color"

// DarkenColor затемняет цвет; factor 0 — чёрный, 1 — без изменений.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
