package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
)

// settingsFile описывает необязательный JSON с переопределениями статических настроек.
// Отсутствующие поля оставляют значения по умолчанию.
type settingsFile struct {
	ScreenWidth    *int      `json:"screen_width"`
	ScreenHeight   *int      `json:"screen_height"`
	BgColor        *[3]uint8 `json:"bg_color"`
	CatLimit       *int      `json:"cat_limit"`
	BulletWidth    *int      `json:"bullet_width"`
	BulletHeight   *int      `json:"bullet_height"`
	BulletColor    *[3]uint8 `json:"bullet_color"`
	BulletsAllowed *int      `json:"bullets_allowed"`
	FleetDropSpeed *float64  `json:"fleet_drop_speed"`
	SpeedupScale   *float64  `json:"speedup_scale"`
	ScoreScale     *float64  `json:"score_scale"`
}

// LoadSettings читает файл настроек и накладывает его на значения по умолчанию.
// Если файла нет, возвращаются настройки по умолчанию без ошибки.
// При ошибке разбора тоже возвращаются настройки по умолчанию вместе с ошибкой.
func LoadSettings(path string) (*Settings, error) {
	s := NewSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	var file settingsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := file.validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	file.apply(s)
	log.Printf("Loaded settings from %s", path)
	return s, nil
}

func (f *settingsFile) validate() error {
	positiveInts := map[string]*int{
		"screen_width":    f.ScreenWidth,
		"screen_height":   f.ScreenHeight,
		"bullet_width":    f.BulletWidth,
		"bullet_height":   f.BulletHeight,
		"bullets_allowed": f.BulletsAllowed,
	}
	for name, v := range positiveInts {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}
	if f.CatLimit != nil && *f.CatLimit < 0 {
		return fmt.Errorf("cat_limit must not be negative, got %d", *f.CatLimit)
	}
	if f.FleetDropSpeed != nil && *f.FleetDropSpeed < 0 {
		return fmt.Errorf("fleet_drop_speed must not be negative, got %v", *f.FleetDropSpeed)
	}
	if f.SpeedupScale != nil && *f.SpeedupScale < 1 {
		return fmt.Errorf("speedup_scale must be at least 1, got %v", *f.SpeedupScale)
	}
	if f.ScoreScale != nil && *f.ScoreScale < 1 {
		return fmt.Errorf("score_scale must be at least 1, got %v", *f.ScoreScale)
	}
	return nil
}

func (f *settingsFile) apply(s *Settings) {
	setInt(&s.ScreenWidth, f.ScreenWidth)
	setInt(&s.ScreenHeight, f.ScreenHeight)
	setInt(&s.CatLimit, f.CatLimit)
	setInt(&s.BulletWidth, f.BulletWidth)
	setInt(&s.BulletHeight, f.BulletHeight)
	setInt(&s.BulletsAllowed, f.BulletsAllowed)
	if f.FleetDropSpeed != nil {
		s.FleetDropSpeed = *f.FleetDropSpeed
	}
	if f.SpeedupScale != nil {
		s.SpeedupScale = *f.SpeedupScale
	}
	if f.ScoreScale != nil {
		s.ScoreScale = *f.ScoreScale
	}
	if f.BgColor != nil {
		s.BgColor = rgb(*f.BgColor)
	}
	if f.BulletColor != nil {
		s.BulletColor = rgb(*f.BulletColor)
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}
