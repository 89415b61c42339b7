// internal/entity/ecs.go
package entity

import (
	"image"
	"maps"
	"slices"

	"go-run-branches/internal/component"
	"go-run-branches/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Cats        map[types.EntityID]*component.Cat
	Bullets     map[types.EntityID]*component.Bullet
	Vacuums     map[types.EntityID]*component.Vacuum
	Stats       *component.Stats
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Cats:        make(map[types.EntityID]*component.Cat),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Vacuums:     make(map[types.EntityID]*component.Vacuum),
		Stats:       &component.Stats{Level: 1},
		GameState:   component.InactiveState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Cats, id)
	delete(ecs.Bullets, id)
	delete(ecs.Vacuums, id)
}

// Rect возвращает прямоугольник сущности, если у неё есть позиция и тело.
func (ecs *ECS) Rect(id types.EntityID) (image.Rectangle, bool) {
	pos, hasPos := ecs.Positions[id]
	body, hasBody := ecs.Bodies[id]
	if !hasPos || !hasBody {
		return image.Rectangle{}, false
	}
	return component.Rect(pos, body), true
}

// ClearBullets удаляет все пули.
func (ecs *ECS) ClearBullets() {
	for id := range ecs.Bullets {
		ecs.RemoveEntity(id)
	}
}

// ClearVacuums удаляет весь флот.
func (ecs *ECS) ClearVacuums() {
	for id := range ecs.Vacuums {
		ecs.RemoveEntity(id)
	}
}

// BulletIDs возвращает ID пуль в порядке создания.
func (ecs *ECS) BulletIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Bullets))
}

// VacuumIDs возвращает ID пылесосов в порядке создания.
func (ecs *ECS) VacuumIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Vacuums))
}
