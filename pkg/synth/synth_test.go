package synth

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const rate = beep.SampleRate(44100)

func TestToneLengthAndRange(t *testing.T) {
	s := Tone(440, 100*time.Millisecond, WaveSine, rate)
	samples := make([][2]float64, rate.N(time.Second))

	n, ok := s.Stream(samples)
	if !ok {
		t.Fatal("first Stream call returned ok=false")
	}
	if want := rate.N(100 * time.Millisecond); n != want {
		t.Fatalf("streamed %d samples, want %d", n, want)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, samples[i][0])
		}
	}
	if n, ok := s.Stream(samples); n != 0 || ok {
		t.Errorf("drained tone streamed n=%d ok=%v", n, ok)
	}
}

func TestDecayFadesOut(t *testing.T) {
	d := 10 * time.Millisecond
	s := Decay(Tone(100, d, WaveSquare, rate), d, rate)
	samples := make([][2]float64, rate.N(d))
	n, _ := s.Stream(samples)

	first, last := samples[0][0], samples[n-1][0]
	if first != 1 {
		t.Errorf("first sample = %v, want 1", first)
	}
	if last < -0.01 || last > 0.01 {
		t.Errorf("last sample = %v, want about 0", last)
	}
}

func TestRenderPCMSize(t *testing.T) {
	d := 50 * time.Millisecond
	pcm := RenderPCM(Tone(440, d, WaveSaw, rate))
	if want := rate.N(d) * 4; len(pcm) != want {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), want)
	}
}

func TestClipsForAllEffects(t *testing.T) {
	cfg := DefaultConfig()
	for _, e := range []Effect{EffectFire, EffectPop, EffectHit, EffectWaveClear, EffectGameOver} {
		pcm := Clip(e, cfg)
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Errorf("effect %d: pcm length %d", e, len(pcm))
		}
	}
}

func TestSilentClip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Volume = 0
	for i, b := range Clip(EffectHit, cfg) {
		if b != 0 {
			t.Fatalf("byte %d = %d, want silence", i, b)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantEnabled bool
		wantVolume  float64
	}{
		{"defaults", nil, true, 0.5},
		{"disabled", map[string]string{EnvAudioEnabled: "0"}, false, 0.5},
		{"volume", map[string]string{EnvVolume: "80"}, true, 0.8},
		{"clamped", map[string]string{EnvVolume: "250"}, true, 1},
		{"garbage", map[string]string{EnvAudioEnabled: "maybe", EnvVolume: "loud"}, true, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfig(func(k string) string { return tt.env[k] })
			if cfg.Enabled != tt.wantEnabled || cfg.Volume != tt.wantVolume {
				t.Errorf("got %+v", cfg)
			}
		})
	}
}
