package system

import (
	"go-run-branches/internal/component"
	"go-run-branches/internal/config"
	"go-run-branches/internal/entity"
	"go-run-branches/internal/types"
)

// FleetLayout считает размер сетки флота. Между пылесосами и по краям
// остаётся по одной ширине (высоте) спрайта, снизу ещё место для кота.
// Если места нет, возвращает нули.
func FleetLayout(screenWidth, screenHeight, vacuumWidth, vacuumHeight, catHeight int) (columns, rows int) {
	if vacuumWidth <= 0 || vacuumHeight <= 0 {
		return 0, 0
	}
	availableX := screenWidth - 2*vacuumWidth
	availableY := screenHeight - 3*vacuumHeight - catHeight
	if availableX <= 0 || availableY <= 0 {
		return 0, 0
	}
	return availableX / (2 * vacuumWidth), availableY / (2 * vacuumHeight)
}

// FleetSystem создаёт флот пылесосов и двигает его
type FleetSystem struct {
	ecs          *entity.ECS
	settings     *config.Settings
	vacuumWidth  int
	vacuumHeight int
}

func NewFleetSystem(ecs *entity.ECS, settings *config.Settings, vacuumWidth, vacuumHeight int) *FleetSystem {
	return &FleetSystem{
		ecs:          ecs,
		settings:     settings,
		vacuumWidth:  vacuumWidth,
		vacuumHeight: vacuumHeight,
	}
}

// Create строит новый флот по текущему размеру экрана и возвращает число пылесосов.
func (s *FleetSystem) Create(catHeight int) int {
	columns, rows := FleetLayout(s.settings.ScreenWidth, s.settings.ScreenHeight, s.vacuumWidth, s.vacuumHeight, catHeight)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			s.spawnVacuum(col, row)
		}
	}
	return columns * rows
}

func (s *FleetSystem) spawnVacuum(col, row int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: float64(s.vacuumWidth * (1 + 2*col)),
		Y: float64(s.vacuumHeight * (1 + 2*row)),
	}
	s.ecs.Bodies[id] = &component.Body{Width: s.vacuumWidth, Height: s.vacuumHeight}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: component.SpriteVacuum}
	s.ecs.Vacuums[id] = &component.Vacuum{}
	return id
}

// CheckEdge сообщает, касается ли пылесос края экрана. Ничего не меняет.
func (s *FleetSystem) CheckEdge(id types.EntityID) bool {
	rect, ok := s.ecs.Rect(id)
	if !ok {
		return false
	}
	return rect.Max.X >= s.settings.ScreenWidth || rect.Min.X <= 0
}

// CheckFleetEdges опускает флот и разворачивает его, если хоть один пылесос у края.
// Срабатывает не больше одного раза за вызов.
func (s *FleetSystem) CheckFleetEdges() bool {
	for id := range s.ecs.Vacuums {
		if s.CheckEdge(id) {
			s.changeFleetDirection()
			return true
		}
	}
	return false
}

func (s *FleetSystem) changeFleetDirection() {
	for id := range s.ecs.Vacuums {
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y += s.settings.FleetDropSpeed
		}
	}
	s.settings.ReverseFleet()
}

// Update проверяет края и сдвигает весь флот по горизонтали.
func (s *FleetSystem) Update() {
	s.CheckFleetEdges()
	step := s.settings.VacuumSpeed * float64(s.settings.FleetDirection)
	for id := range s.ecs.Vacuums {
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.X += step
		}
	}
}

// ReachedBottom — дошёл ли хоть один пылесос до низа экрана
func (s *FleetSystem) ReachedBottom() bool {
	for id := range s.ecs.Vacuums {
		if rect, ok := s.ecs.Rect(id); ok && rect.Max.Y >= s.settings.ScreenHeight {
			return true
		}
	}
	return false
}
