package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave — форма волны
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// Tone возвращает поток заданной длительности с одной частотой.
func Tone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay гасит громкость линейно от 1 до 0 за length сэмплов
type decay struct {
	streamer beep.Streamer
	position int
	length   int
}

// Decay накладывает линейное затухание на весь поток длиной duration.
func Decay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, length: max(rate.N(duration), 1)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.length)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Volume задаёт громкость 0.0–1.0; ноль — тишина.
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
