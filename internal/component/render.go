// component/render.go
package component

import "image/color"

// SpriteID — какой картинкой рисовать сущность
type SpriteID string

const (
	SpriteNone   SpriteID = "" // залитый прямоугольник цветом Color
	SpriteCat    SpriteID = "cat"
	SpriteVacuum SpriteID = "vacuum"
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Sprite SpriteID
	Color  color.RGBA
}
