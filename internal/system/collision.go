package system

import (
	"go-run-branches/internal/entity"
	"go-run-branches/internal/types"
	"image"
)

// CollisionSystem проверяет пересечения прямоугольников
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

// BulletVacuumCollisions удаляет попавшие пули и все задетые ими пылесосы.
// Пули обходятся в порядке создания; пылесос, уже сбитый раньше в этом тике,
// вторую пулю не останавливает. Возвращает число сбитых пылесосов.
func (s *CollisionSystem) BulletVacuumCollisions() int {
	destroyed := 0
	for _, bulletID := range s.ecs.BulletIDs() {
		bulletRect, ok := s.ecs.Rect(bulletID)
		if !ok {
			continue
		}
		var hits []types.EntityID
		for _, vacuumID := range s.ecs.VacuumIDs() {
			if r, ok := s.ecs.Rect(vacuumID); ok && bulletRect.Overlaps(r) {
				hits = append(hits, vacuumID)
			}
		}
		if len(hits) == 0 {
			continue
		}
		for _, id := range hits {
			s.ecs.RemoveEntity(id)
		}
		s.ecs.RemoveEntity(bulletID)
		destroyed += len(hits)
	}
	return destroyed
}

// AnyVacuumHits — пересекается ли rect хотя бы с одним пылесосом
func (s *CollisionSystem) AnyVacuumHits(rect image.Rectangle) bool {
	for id := range s.ecs.Vacuums {
		if r, ok := s.ecs.Rect(id); ok && rect.Overlaps(r) {
			return true
		}
	}
	return false
}
