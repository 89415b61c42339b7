package entity

import (
	"image"
	"testing"

	"go-run-branches/internal/component"
)

func TestNewEntityIDsIncrease(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a == 0 || b <= a {
		t.Fatalf("ids = %d, %d", a, b)
	}
}

func TestRemoveEntityClearsAllStores(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 1, Y: 2}
	ecs.Bodies[id] = &component.Body{Width: 3, Height: 4}
	ecs.Renderables[id] = &component.Renderable{Sprite: component.SpriteVacuum}
	ecs.Vacuums[id] = &component.Vacuum{}

	ecs.RemoveEntity(id)

	if len(ecs.Positions)+len(ecs.Bodies)+len(ecs.Renderables)+len(ecs.Vacuums) != 0 {
		t.Fatal("entity left in some store")
	}
}

func TestRectTruncatesPosition(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 10.9, Y: 20.2}
	ecs.Bodies[id] = &component.Body{Width: 5, Height: 6}

	got, ok := ecs.Rect(id)
	if !ok {
		t.Fatal("Rect reported missing entity")
	}
	if want := image.Rect(10, 20, 15, 26); got != want {
		t.Errorf("Rect = %v, want %v", got, want)
	}
	if _, ok := ecs.Rect(id + 1); ok {
		t.Error("Rect found a non-existent entity")
	}
}

func TestClearBulletsKeepsVacuums(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 3; i++ {
		ecs.Bullets[ecs.NewEntity()] = &component.Bullet{}
	}
	v := ecs.NewEntity()
	ecs.Vacuums[v] = &component.Vacuum{}

	ecs.ClearBullets()

	if len(ecs.Bullets) != 0 {
		t.Errorf("bullets left: %d", len(ecs.Bullets))
	}
	if _, ok := ecs.Vacuums[v]; !ok {
		t.Error("vacuum removed by ClearBullets")
	}

	ecs.ClearVacuums()
	if len(ecs.Vacuums) != 0 {
		t.Errorf("vacuums left: %d", len(ecs.Vacuums))
	}
}

func TestIDsSorted(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 10; i++ {
		ecs.Vacuums[ecs.NewEntity()] = &component.Vacuum{}
	}
	ids := ecs.VacuumIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}
}
