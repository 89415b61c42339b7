package synth

import (
	"time"

	"github.com/gopxl/beep"
)

// Effect — игровой звуковой эффект
type Effect int

const (
	EffectFire Effect = iota
	EffectPop
	EffectHit
	EffectWaveClear
	EffectGameOver
)

func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Decay(Tone(freq, d, wave, rate), d, rate)
}

// Build собирает поток эффекта.
func Build(effect Effect, rate beep.SampleRate) beep.Streamer {
	switch effect {
	case EffectFire:
		return beep.Seq(
			note(1320, 30*time.Millisecond, WaveSquare, rate),
			note(990, 30*time.Millisecond, WaveSquare, rate),
		)
	case EffectPop:
		return note(0, 80*time.Millisecond, WaveNoise, rate)
	case EffectHit:
		return note(110, 250*time.Millisecond, WaveSaw, rate)
	case EffectWaveClear:
		return beep.Seq(
			note(523.25, 90*time.Millisecond, WaveSine, rate),
			note(659.25, 90*time.Millisecond, WaveSine, rate),
			note(783.99, 160*time.Millisecond, WaveSine, rate),
		)
	case EffectGameOver:
		return beep.Seq(
			note(392, 200*time.Millisecond, WaveSaw, rate),
			note(329.63, 200*time.Millisecond, WaveSaw, rate),
			note(261.63, 400*time.Millisecond, WaveSaw, rate),
		)
	}
	return beep.Silence(0)
}

// RenderPCM прогоняет поток до конца и возвращает 16-битный little-endian стерео PCM.
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(min(max(buf[i][ch], -1), 1) * 32767)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Clip рендерит эффект с громкостью cfg.Volume.
func Clip(effect Effect, cfg Config) []byte {
	rate := beep.SampleRate(cfg.SampleRate)
	return RenderPCM(Volume(Build(effect, rate), cfg.Volume))
}
