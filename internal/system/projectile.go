package system

import (
	"go-run-branches/internal/component"
	"go-run-branches/internal/config"
	"go-run-branches/internal/entity"
	"go-run-branches/internal/event"
	"go-run-branches/internal/types"
	"image"
)

// ProjectileSystem создаёт пули и двигает их вверх
type ProjectileSystem struct {
	ecs             *entity.ECS
	settings        *config.Settings
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, settings *config.Settings, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		settings:        settings,
		eventDispatcher: eventDispatcher,
	}
}

// Fire выпускает пулю из середины верхнего края shooter.
// Если в полёте уже BulletsAllowed пуль, выстрел молча пропадает.
func (s *ProjectileSystem) Fire(shooter image.Rectangle) (types.EntityID, bool) {
	if len(s.ecs.Bullets) >= s.settings.BulletsAllowed {
		return 0, false
	}

	w, h := s.settings.BulletWidth, s.settings.BulletHeight
	centerX := (shooter.Min.X + shooter.Max.X) / 2

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: float64(centerX - w/2),
		Y: float64(shooter.Min.Y),
	}
	s.ecs.Bodies[id] = &component.Body{Width: w, Height: h}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: component.SpriteNone, Color: s.settings.BulletColor}
	s.ecs.Bullets[id] = &component.Bullet{}

	s.eventDispatcher.Emit(event.BulletFired, id)
	return id, true
}

// Update поднимает пули и удаляет те, что ушли за верх экрана.
func (s *ProjectileSystem) Update() {
	for id := range s.ecs.Bullets {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.Y -= s.settings.BulletSpeed
	}

	for id := range s.ecs.Bullets {
		if rect, ok := s.ecs.Rect(id); ok && rect.Max.Y <= 0 {
			s.ecs.RemoveEntity(id)
		}
	}
}
