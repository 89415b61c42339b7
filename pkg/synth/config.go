package synth

import (
	"os"
	"strconv"
)

const (
	EnvAudioEnabled = "RUN_BRANCHES_AUDIO"
	EnvVolume       = "RUN_BRANCHES_VOLUME"
)

// Config — настройки звука
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // 0.0–1.0
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: 44100,
		Volume:     0.5,
	}
}

// LoadConfig читает настройки звука из переменных окружения.
func LoadConfig() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if enabled := getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0–100 -> 0.0–1.0
	if volume := getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}
