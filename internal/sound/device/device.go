// Package device открывает аудиоустройство через oto.
package device

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OpenTimeout — сколько ждать, пока драйвер откроет устройство.
const OpenTimeout = 2 * time.Second

var ErrNotReady = errors.New("audio device not ready")

// Output проигрывает 16-битный стерео PCM.
type Output struct {
	ctx *oto.Context
}

// Open создаёт контекст oto и дожидается, пока устройство откроется.
// Ошибка устройства (например, нет ALSA) возвращается сразу, а не
// всплывает потом посреди игры.
func Open(sampleRate int, timeout time.Duration) (*Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	select {
	case <-ready:
	case <-time.After(timeout):
		return nil, fmt.Errorf("open audio: %w after %v", ErrNotReady, timeout)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	return &Output{ctx: ctx}, nil
}

func (o *Output) Play(clip []byte) {
	o.ctx.NewPlayer(bytes.NewReader(clip)).Play()
}

func (o *Output) Err() error {
	return o.ctx.Err()
}
