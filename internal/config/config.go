package config

import "image/color"

const (
	DefaultScreenWidth  = 1400
	DefaultScreenHeight = 800
	WindowTitle         = "Run Branches"
	MaxDeltaTime        = 0.06

	CatLimit       = 3
	BulletWidth    = 6
	BulletHeight   = 15
	BulletsAllowed = 3
	FleetDropSpeed = 5.0

	SpeedupScale = 1.2 // Во сколько раз ускоряется игра с каждым уровнем
	ScoreScale   = 1.5 // Во сколько раз растёт цена пылесоса

	BaseCatSpeed     = 1.5
	BaseBulletSpeed  = 1.5
	BaseVacuumSpeed  = 0.7
	BaseVacuumPoints = 50

	HitCooldown = 0.5 // секунды паузы после потери жизни

	PlayButtonWidth  = 200
	PlayButtonHeight = 50
	PlayButtonText   = "Play"

	HUDMargin     = 20
	HUDTextScale  = 2.0
	HUDLineHeight = 13 // высота строки basicfont.Face7x13
	LivesIconGap  = 10

	CatImagePath    = "assets/images/cat.bmp"
	VacuumImagePath = "assets/images/vacuum.bmp"
	SettingsPath    = "assets/data/settings.json"
)

var (
	BackgroundColor   = color.RGBA{239, 201, 201, 255}
	BulletColor       = color.RGBA{60, 60, 60, 255}
	ButtonColor       = color.RGBA{0, 135, 0, 255}
	ButtonTextColor   = color.RGBA{255, 255, 255, 255}
	HUDTextColor      = color.RGBA{30, 30, 30, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	PauseTextColor    = color.RGBA{240, 240, 240, 255}
)
