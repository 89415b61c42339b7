package sound

import (
	"log"

	"go-run-branches/internal/event"
	"go-run-branches/pkg/synth"
)

// Output — устройство, которое умеет проиграть готовый PCM-клип.
type Output interface {
	Play(clip []byte)
	Err() error
}

// SoundSystem проигрывает эффекты по игровым событиям.
type SoundSystem struct {
	out        Output
	clips      map[event.EventType][]byte
	dispatcher *event.Dispatcher
}

var effectsByEvent = map[event.EventType]synth.Effect{
	event.BulletFired:     synth.EffectFire,
	event.VacuumDestroyed: synth.EffectPop,
	event.CatHit:          synth.EffectHit,
	event.WaveCleared:     synth.EffectWaveClear,
	event.GameOver:        synth.EffectGameOver,
}

// NewSoundSystem заранее рендерит все эффекты. Возвращает nil, если звук
// выключен или устройства нет.
func NewSoundSystem(cfg synth.Config, out Output) *SoundSystem {
	if !cfg.Enabled || out == nil {
		return nil
	}
	s := &SoundSystem{
		out:   out,
		clips: make(map[event.EventType][]byte, len(effectsByEvent)),
	}
	for t, effect := range effectsByEvent {
		s.clips[t] = synth.Clip(effect, cfg)
	}
	return s
}

// Subscribe подписывает систему на события с эффектами.
func (s *SoundSystem) Subscribe(d *event.Dispatcher) {
	s.dispatcher = d
	for t := range effectsByEvent {
		d.Subscribe(s, t)
	}
}

// OnEvent проигрывает клип события. Если устройство сломалось, звук
// отключается до конца игры, а сама игра продолжается.
func (s *SoundSystem) OnEvent(e event.Event) {
	clip, ok := s.clips[e.Type]
	if !ok {
		return
	}
	if err := s.out.Err(); err != nil {
		log.Printf("Audio failed, continuing silent: %v", err)
		s.mute()
		return
	}
	s.out.Play(clip)
}

func (s *SoundSystem) mute() {
	if s.dispatcher == nil {
		return
	}
	for t := range effectsByEvent {
		s.dispatcher.Unsubscribe(s, t)
	}
	s.dispatcher = nil
}
