package sound

import (
	"errors"
	"testing"

	"go-run-branches/internal/event"
	"go-run-branches/pkg/synth"
)

type fakeOutput struct {
	played   [][]byte
	err      error
	errCalls int
}

func (o *fakeOutput) Play(clip []byte) { o.played = append(o.played, clip) }

func (o *fakeOutput) Err() error {
	o.errCalls++
	return o.err
}

func TestNewSoundSystemDisabled(t *testing.T) {
	cfg := synth.DefaultConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	if s := NewSoundSystem(cfg, out); s != nil {
		t.Fatalf("disabled config gave %v, want nil", s)
	}

	d := event.NewDispatcher()
	d.Emit(event.BulletFired, nil)
	if len(out.played) != 0 || out.errCalls != 0 {
		t.Errorf("disabled sound touched the device: played %d, err checks %d", len(out.played), out.errCalls)
	}
}

func TestNewSoundSystemWithoutDevice(t *testing.T) {
	if s := NewSoundSystem(synth.DefaultConfig(), nil); s != nil {
		t.Errorf("nil output gave %v, want nil", s)
	}
}

func TestPlaysClipPerEvent(t *testing.T) {
	out := &fakeOutput{}
	s := NewSoundSystem(synth.DefaultConfig(), out)
	d := event.NewDispatcher()
	s.Subscribe(d)

	d.Emit(event.BulletFired, nil)
	d.Emit(event.ScoreChanged, 50) // без звука
	d.Emit(event.GameOver, nil)

	if len(out.played) != 2 {
		t.Fatalf("played %d clips, want 2", len(out.played))
	}
	for i, clip := range out.played {
		if len(clip) == 0 {
			t.Errorf("clip %d is empty", i)
		}
	}
}

func TestDeviceFailureMutes(t *testing.T) {
	out := &fakeOutput{err: errors.New("device lost")}
	s := NewSoundSystem(synth.DefaultConfig(), out)
	d := event.NewDispatcher()
	s.Subscribe(d)

	d.Emit(event.BulletFired, nil)
	d.Emit(event.CatHit, nil)
	d.Emit(event.WaveCleared, nil)

	if len(out.played) != 0 {
		t.Errorf("played %d clips on a broken device", len(out.played))
	}
	if out.errCalls != 1 {
		t.Errorf("device checked %d times, want 1 (unsubscribed after failure)", out.errCalls)
	}
}
