package system

import (
	"go-run-branches/internal/component"
	"go-run-branches/internal/config"
	"go-run-branches/internal/entity"
	"go-run-branches/internal/types"
	"image"
)

// CatSystem управляет котом: движение по флагам и возврат в центр
type CatSystem struct {
	ecs      *entity.ECS
	settings *config.Settings
	catID    types.EntityID
}

func NewCatSystem(ecs *entity.ECS, settings *config.Settings) *CatSystem {
	return &CatSystem{ecs: ecs, settings: settings}
}

// Spawn создаёт кота заданного размера внизу по центру экрана.
func (s *CatSystem) Spawn(width, height int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{}
	s.ecs.Bodies[id] = &component.Body{Width: width, Height: height}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: component.SpriteCat}
	s.ecs.Cats[id] = &component.Cat{}
	s.catID = id
	s.Center()
	return id
}

func (s *CatSystem) ID() types.EntityID {
	return s.catID
}

// Rect — текущий прямоугольник кота
func (s *CatSystem) Rect() image.Rectangle {
	r, _ := s.ecs.Rect(s.catID)
	return r
}

func (s *CatSystem) SetMovingLeft(moving bool) {
	if cat, ok := s.ecs.Cats[s.catID]; ok {
		cat.MovingLeft = moving
	}
}

func (s *CatSystem) SetMovingRight(moving bool) {
	if cat, ok := s.ecs.Cats[s.catID]; ok {
		cat.MovingRight = moving
	}
}

// Update сдвигает кота. Край проверяется по прямоугольнику до сдвига,
// поэтому за один кадр кот может заехать за край на один шаг.
func (s *CatSystem) Update() {
	for id, cat := range s.ecs.Cats {
		pos, hasPos := s.ecs.Positions[id]
		body, hasBody := s.ecs.Bodies[id]
		if !hasPos || !hasBody {
			continue
		}
		rect := component.Rect(pos, body)
		if cat.MovingRight && rect.Max.X < s.settings.ScreenWidth {
			pos.X += s.settings.CatSpeed
		}
		if cat.MovingLeft && rect.Min.X > 0 {
			pos.X -= s.settings.CatSpeed
		}
	}
}

// Center ставит кота вниз по центру экрана.
func (s *CatSystem) Center() {
	for id := range s.ecs.Cats {
		pos, hasPos := s.ecs.Positions[id]
		body, hasBody := s.ecs.Bodies[id]
		if !hasPos || !hasBody {
			continue
		}
		pos.X = float64(s.settings.ScreenWidth/2 - body.Width/2)
		pos.Y = float64(s.settings.ScreenHeight - body.Height)
	}
}
