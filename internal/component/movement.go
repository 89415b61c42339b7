// component/movement.go
package component

import "image"

// Position — компонент позиции (левый верхний угол спрайта)
type Position struct {
	X, Y float64
}

// Body — размер прямоугольника столкновений
type Body struct {
	Width, Height int
}

// Rect возвращает прямоугольник сущности. Дробная позиция отбрасывается,
// как у спрайта, который следует за вещественной координатой.
func Rect(pos *Position, body *Body) image.Rectangle {
	x, y := int(pos.X), int(pos.Y)
	return image.Rect(x, y, x+body.Width, y+body.Height)
}
