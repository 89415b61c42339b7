package system

import (
	"go-run-branches/internal/component"
	"go-run-branches/internal/config"
	"go-run-branches/internal/entity"
	"go-run-branches/internal/event"
	"go-run-branches/internal/types"
)

func newWorld() (*entity.ECS, *config.Settings) {
	return entity.NewECS(), config.NewSettings()
}

func addVacuum(ecs *entity.ECS, x, y float64, w, h int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Bodies[id] = &component.Body{Width: w, Height: h}
	ecs.Vacuums[id] = &component.Vacuum{}
	return id
}

func addBullet(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Bodies[id] = &component.Body{Width: config.BulletWidth, Height: config.BulletHeight}
	ecs.Bullets[id] = &component.Bullet{}
	return id
}

type counter struct{ n int }

func (c *counter) OnEvent(event.Event) { c.n++ }
