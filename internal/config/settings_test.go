package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIncreaseSpeedScalesPoints(t *testing.T) {
	s := NewSettings()
	want := []int{75, 112, 168}
	for i, w := range want {
		s.IncreaseSpeed()
		if s.VacuumPoints != w {
			t.Fatalf("step %d: VacuumPoints = %d, want %d", i+1, s.VacuumPoints, w)
		}
	}
}

func TestIncreaseSpeedStrictlyIncreases(t *testing.T) {
	s := NewSettings()
	for i := 0; i < 5; i++ {
		cat, bullet, vacuum, points := s.CatSpeed, s.BulletSpeed, s.VacuumSpeed, s.VacuumPoints
		s.IncreaseSpeed()
		if s.CatSpeed <= cat || s.BulletSpeed <= bullet || s.VacuumSpeed <= vacuum {
			t.Fatalf("step %d: speeds did not increase: %+v", i+1, s)
		}
		if s.VacuumPoints <= points {
			t.Fatalf("step %d: points did not increase: %d -> %d", i+1, points, s.VacuumPoints)
		}
	}
}

func TestResetDynamic(t *testing.T) {
	s := NewSettings()
	s.IncreaseSpeed()
	s.IncreaseSpeed()
	s.ReverseFleet()

	s.ResetDynamic()

	if s.CatSpeed != BaseCatSpeed || s.BulletSpeed != BaseBulletSpeed || s.VacuumSpeed != BaseVacuumSpeed {
		t.Errorf("speeds not reset: %+v", s)
	}
	if s.FleetDirection != 1 {
		t.Errorf("FleetDirection = %d, want 1", s.FleetDirection)
	}
	if s.VacuumPoints != BaseVacuumPoints {
		t.Errorf("VacuumPoints = %d, want %d", s.VacuumPoints, BaseVacuumPoints)
	}
}

func TestReverseFleetStaysSigned(t *testing.T) {
	s := NewSettings()
	for i := 0; i < 4; i++ {
		before := s.FleetDirection
		s.ReverseFleet()
		if s.FleetDirection != -before {
			t.Fatalf("FleetDirection = %d after reversing %d", s.FleetDirection, before)
		}
		if s.FleetDirection != 1 && s.FleetDirection != -1 {
			t.Fatalf("FleetDirection = %d, want ±1", s.FleetDirection)
		}
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ScreenWidth != DefaultScreenWidth || s.BulletsAllowed != BulletsAllowed {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{"screen_width": 1024, "bullets_allowed": 5, "bg_color": [10, 20, 30], "score_scale": 2}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ScreenWidth != 1024 {
		t.Errorf("ScreenWidth = %d, want 1024", s.ScreenWidth)
	}
	if s.ScreenHeight != DefaultScreenHeight {
		t.Errorf("ScreenHeight = %d, want default", s.ScreenHeight)
	}
	if s.BulletsAllowed != 5 {
		t.Errorf("BulletsAllowed = %d, want 5", s.BulletsAllowed)
	}
	if s.BgColor.R != 10 || s.BgColor.G != 20 || s.BgColor.B != 30 || s.BgColor.A != 255 {
		t.Errorf("BgColor = %v", s.BgColor)
	}
	s.IncreaseSpeed()
	if s.VacuumPoints != 100 {
		t.Errorf("VacuumPoints = %d, want 100", s.VacuumPoints)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	cases := map[string]string{
		"malformed":        `{"screen_width": `,
		"negative width":   `{"screen_width": -5}`,
		"zero bullets":     `{"bullets_allowed": 0}`,
		"shrinking speeds": `{"speedup_scale": 0.5}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			s, err := LoadSettings(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if s == nil || s.ScreenWidth != DefaultScreenWidth {
				t.Errorf("expected defaults alongside error, got %+v", s)
			}
		})
	}
}

func TestFitScreen(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"monitor size", 1920, 1080, 1920, 1080},
		{"no monitor", 0, 0, DefaultScreenWidth, DefaultScreenHeight},
		{"half known", 1920, 0, DefaultScreenWidth, DefaultScreenHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings()
			s.FitScreen(tt.w, tt.h)
			if s.ScreenWidth != tt.wantW || s.ScreenHeight != tt.wantH {
				t.Errorf("screen = %dx%d, want %dx%d", s.ScreenWidth, s.ScreenHeight, tt.wantW, tt.wantH)
			}
		})
	}
}
