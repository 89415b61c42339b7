package config

import "image/color"

// Settings хранит параметры игры. Статические поля задаются один раз за
// сессию, динамические сбрасываются через ResetDynamic при каждом старте.
type Settings struct {
	// Экран
	ScreenWidth  int
	ScreenHeight int
	BgColor      color.RGBA

	CatLimit int

	// Пули
	BulletWidth    int
	BulletHeight   int
	BulletColor    color.RGBA
	BulletsAllowed int

	FleetDropSpeed float64
	SpeedupScale   float64
	ScoreScale     float64

	// Динамические параметры
	CatSpeed       float64
	BulletSpeed    float64
	VacuumSpeed    float64
	FleetDirection int // 1 — вправо, -1 — влево
	VacuumPoints   int
}

// NewSettings создаёт настройки со значениями по умолчанию.
func NewSettings() *Settings {
	s := &Settings{
		ScreenWidth:    DefaultScreenWidth,
		ScreenHeight:   DefaultScreenHeight,
		BgColor:        BackgroundColor,
		CatLimit:       CatLimit,
		BulletWidth:    BulletWidth,
		BulletHeight:   BulletHeight,
		BulletColor:    BulletColor,
		BulletsAllowed: BulletsAllowed,
		FleetDropSpeed: FleetDropSpeed,
		SpeedupScale:   SpeedupScale,
		ScoreScale:     ScoreScale,
	}
	s.ResetDynamic()
	return s
}

// ResetDynamic возвращает скорости, направление флота и цену пылесоса к базовым.
func (s *Settings) ResetDynamic() {
	s.CatSpeed = BaseCatSpeed
	s.BulletSpeed = BaseBulletSpeed
	s.VacuumSpeed = BaseVacuumSpeed
	s.FleetDirection = 1
	s.VacuumPoints = BaseVacuumPoints
}

// IncreaseSpeed ускоряет игру и поднимает цену пылесоса (с отбрасыванием дробной части).
func (s *Settings) IncreaseSpeed() {
	s.CatSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.VacuumSpeed *= s.SpeedupScale

	s.VacuumPoints = int(float64(s.VacuumPoints) * s.ScoreScale)
}

// ReverseFleet меняет направление движения флота.
func (s *Settings) ReverseFleet() {
	if s.FleetDirection > 0 {
		s.FleetDirection = -1
	} else {
		s.FleetDirection = 1
	}
}

// FitScreen подгоняет размер экрана под монитор. Неизвестный размер
// (нет монитора) оставляет значения из настроек.
func (s *Settings) FitScreen(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.ScreenWidth, s.ScreenHeight = width, height
}
