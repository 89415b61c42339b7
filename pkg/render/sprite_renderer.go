package render

import (
	"image"
	"image/color"

	"go-run-branches/internal/component"
	"go-run-branches/internal/entity"
	"go-run-branches/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteRenderer рисует фон и все сущности с Renderable.
type SpriteRenderer struct {
	images     map[component.SpriteID]*ebiten.Image
	background color.Color
}

// NewSpriteRenderer переводит загруженные картинки в ebiten.Image один раз.
func NewSpriteRenderer(sources map[component.SpriteID]image.Image, background color.Color) *SpriteRenderer {
	images := make(map[component.SpriteID]*ebiten.Image, len(sources))
	for id, img := range sources {
		images[id] = ebiten.NewImageFromImage(img)
	}
	return &SpriteRenderer{images: images, background: background}
}

// Image возвращает ebiten-картинку спрайта (нужна HUD для иконок жизней).
func (r *SpriteRenderer) Image(id component.SpriteID) *ebiten.Image {
	return r.images[id]
}

// Draw рисует кадр: фон, кот, пули, пылесосы.
func (r *SpriteRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.background)

	for id := range ecs.Cats {
		r.drawEntity(screen, ecs, id)
	}
	for id := range ecs.Bullets {
		r.drawEntity(screen, ecs, id)
	}
	for id := range ecs.Vacuums {
		r.drawEntity(screen, ecs, id)
	}
}

func (r *SpriteRenderer) drawEntity(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	renderable, ok := ecs.Renderables[id]
	if !ok {
		return
	}
	rect, ok := ecs.Rect(id)
	if !ok {
		return
	}

	img, hasImage := r.images[renderable.Sprite]
	if !hasImage {
		vector.DrawFilledRect(screen,
			float32(rect.Min.X), float32(rect.Min.Y),
			float32(rect.Dx()), float32(rect.Dy()),
			renderable.Color, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(img, op)
}
