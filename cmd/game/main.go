// cmd/game/main.go
package main

import (
	"log"
	"time"

	game "go-run-branches/internal/app"
	"go-run-branches/internal/assets"
	"go-run-branches/internal/component"
	"go-run-branches/internal/config"
	"go-run-branches/internal/event"
	"go-run-branches/internal/sound"
	"go-run-branches/internal/sound/device"
	"go-run-branches/internal/state"
	"go-run-branches/internal/ui"
	"go-run-branches/pkg/render"
	"go-run-branches/pkg/synth"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	settings       *config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.ScreenWidth, a.settings.ScreenHeight
}

// monitorSize — размер основного монитора или 0, 0, если монитора нет.
func monitorSize() (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0
	}
	return m.Size()
}

// openSound открывает звук. Без устройства игра идёт молча.
func openSound(cfg synth.Config) *sound.SoundSystem {
	if !cfg.Enabled {
		log.Println("Audio disabled")
		return nil
	}
	out, err := device.Open(cfg.SampleRate, device.OpenTimeout)
	if err != nil {
		log.Printf("Audio unavailable, continuing silent (set %s=0 to skip): %v", synth.EnvAudioEnabled, err)
		return nil
	}
	return sound.NewSoundSystem(cfg, out)
}

func main() {
	settings, err := config.LoadSettings(config.SettingsPath)
	if err != nil {
		log.Printf("Settings: %v; using defaults", err)
	}
	settings.FitScreen(monitorSize())

	sprites, err := assets.LoadSprites(map[component.SpriteID]string{
		component.SpriteCat:    config.CatImagePath,
		component.SpriteVacuum: config.VacuumImagePath,
	})
	if err != nil {
		log.Fatalf("Cannot start: missing or broken game images (%v)", err)
	}

	dispatcher := event.NewDispatcher()
	g := game.NewGame(settings, game.SpriteSizes{
		Cat:    sprites.Size(component.SpriteCat),
		Vacuum: sprites.Size(component.SpriteVacuum),
	}, ui.Cursor{}, dispatcher)

	if snd := openSound(synth.LoadConfig()); snd != nil {
		snd.Subscribe(dispatcher)
	}

	renderer := render.NewSpriteRenderer(sprites.Images(), settings.BgColor)
	hud := ui.NewHUD(settings.ScreenWidth, renderer.Image(component.SpriteCat))

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, g, renderer, hud))

	app := &AppGame{
		stateMachine:   sm,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetFullscreen(true)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
