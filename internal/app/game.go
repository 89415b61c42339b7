package app

import (
	"image"
	"log"

	"go-run-branches/internal/component"
	"go-run-branches/internal/config"
	"go-run-branches/internal/entity"
	"go-run-branches/internal/event"
	"go-run-branches/internal/input"
	"go-run-branches/internal/system"
)

// Убеждаемся, что Game управляется вводом игрового экрана
var _ input.Controller = (*Game)(nil)

// Cursor показывает и прячет курсор мыши.
type Cursor interface {
	SetVisible(visible bool)
}

// SpriteSizes — размеры картинок, нужные логике (раскладка флота, столкновения).
type SpriteSizes struct {
	Cat    image.Point
	Vacuum image.Point
}

// Game holds the game state and runs one tick of the loop.
type Game struct {
	Settings         *config.Settings
	ECS              *entity.ECS
	Stats            *component.Stats
	Scoreboard       *Scoreboard
	EventDispatcher  *event.Dispatcher
	CatSystem        *system.CatSystem
	ProjectileSystem *system.ProjectileSystem
	FleetSystem      *system.FleetSystem
	CollisionSystem  *system.CollisionSystem
	PlayButton       image.Rectangle

	cursor   Cursor
	sizes    SpriteSizes
	cooldown float64 // секунды до снятия паузы после потери жизни
}

// NewGame creates a game in the inactive state with the first fleet already laid out.
func NewGame(settings *config.Settings, sizes SpriteSizes, cursor Cursor, dispatcher *event.Dispatcher) *Game {
	ecs := entity.NewECS()
	ecs.Stats.Reset(settings.CatLimit)

	g := &Game{
		Settings:         settings,
		ECS:              ecs,
		Stats:            ecs.Stats,
		EventDispatcher:  dispatcher,
		CatSystem:        system.NewCatSystem(ecs, settings),
		ProjectileSystem: system.NewProjectileSystem(ecs, settings, dispatcher),
		FleetSystem:      system.NewFleetSystem(ecs, settings, sizes.Vacuum.X, sizes.Vacuum.Y),
		CollisionSystem:  system.NewCollisionSystem(ecs),
		PlayButton:       playButtonRect(settings),
		cursor:           cursor,
		sizes:            sizes,
	}
	g.Scoreboard = NewScoreboard(ecs.Stats)
	dispatcher.Subscribe(g.Scoreboard,
		event.ScoreChanged, event.HighScoreChanged, event.LevelChanged, event.LivesChanged, event.GameStarted)

	g.CatSystem.Spawn(sizes.Cat.X, sizes.Cat.Y)
	g.createFleet()
	return g
}

func playButtonRect(settings *config.Settings) image.Rectangle {
	x := settings.ScreenWidth/2 - config.PlayButtonWidth/2
	y := settings.ScreenHeight/2 - config.PlayButtonHeight/2
	return image.Rect(x, y, x+config.PlayButtonWidth, y+config.PlayButtonHeight)
}

func (g *Game) Active() bool {
	return g.ECS.GameState == component.ActiveState
}

// CoolingDown — идёт пауза после потери жизни
func (g *Game) CoolingDown() bool {
	return g.cooldown > 0
}

// StartGame сбрасывает всё и начинает новую партию.
func (g *Game) StartGame() {
	g.Settings.ResetDynamic()
	g.Stats.Reset(g.Settings.CatLimit)
	g.ECS.GameState = component.ActiveState
	g.cooldown = 0

	g.ECS.ClearVacuums()
	g.ECS.ClearBullets()
	g.createFleet()
	g.CatSystem.Center()

	g.cursor.SetVisible(false)
	g.EventDispatcher.Emit(event.GameStarted, nil)
	log.Printf("New game: %d vacuums, %d lives", len(g.ECS.Vacuums), g.Stats.CatsLeft)
}

// HandleClick запускает игру по клику на кнопку Play, если игра не идёт.
func (g *Game) HandleClick(x, y int) {
	if !g.Active() && image.Pt(x, y).In(g.PlayButton) {
		g.StartGame()
	}
}

func (g *Game) SetMovingLeft(moving bool) {
	g.CatSystem.SetMovingLeft(moving)
}

func (g *Game) SetMovingRight(moving bool) {
	g.CatSystem.SetMovingRight(moving)
}

// FireBullet стреляет, если игра идёт и лимит пуль не исчерпан.
func (g *Game) FireBullet() {
	if !g.Active() || g.CoolingDown() {
		return
	}
	g.ProjectileSystem.Fire(g.CatSystem.Rect())
}

// Update выполняет один тик: кот, пули и столкновения, флот и проверки попаданий.
func (g *Game) Update(deltaTime float64) {
	if !g.Active() {
		return
	}
	if g.cooldown > 0 {
		g.cooldown -= deltaTime
		return
	}

	g.CatSystem.Update()
	g.updateBullets()
	g.updateVacuums()
}

func (g *Game) updateBullets() {
	g.ProjectileSystem.Update()
	g.checkBulletVacuumCollisions()
}

func (g *Game) checkBulletVacuumCollisions() {
	destroyed := g.CollisionSystem.BulletVacuumCollisions()
	if destroyed > 0 {
		g.Stats.Score += g.Settings.VacuumPoints * destroyed
		g.EventDispatcher.Emit(event.VacuumDestroyed, destroyed)
		g.EventDispatcher.Emit(event.ScoreChanged, g.Stats.Score)
		g.checkHighScore()
	}

	// Пустой флот на слишком маленьком экране волной не считается.
	if destroyed > 0 && len(g.ECS.Vacuums) == 0 {
		g.ECS.ClearBullets()
		g.createFleet()
		g.Settings.IncreaseSpeed()

		g.Stats.Level++
		g.EventDispatcher.Emit(event.WaveCleared, g.Stats.Level)
		g.EventDispatcher.Emit(event.LevelChanged, g.Stats.Level)
	}
}

func (g *Game) checkHighScore() {
	if g.Stats.Score > g.Stats.HighScore {
		g.Stats.HighScore = g.Stats.Score
		g.EventDispatcher.Emit(event.HighScoreChanged, g.Stats.HighScore)
	}
}

func (g *Game) updateVacuums() {
	g.FleetSystem.Update()

	if g.CollisionSystem.AnyVacuumHits(g.CatSystem.Rect()) || g.FleetSystem.ReachedBottom() {
		g.catHit()
	}
}

func (g *Game) createFleet() {
	if n := g.FleetSystem.Create(g.sizes.Cat.Y); n == 0 {
		log.Printf("Screen %dx%d is too small for a fleet", g.Settings.ScreenWidth, g.Settings.ScreenHeight)
	}
}

// catHit: кот потерял жизнь. Если жизней не осталось — конец игры.
func (g *Game) catHit() {
	if g.Stats.CatsLeft > 0 {
		g.Stats.CatsLeft--
		g.EventDispatcher.Emit(event.CatHit, g.Stats.CatsLeft)
		g.EventDispatcher.Emit(event.LivesChanged, g.Stats.CatsLeft)

		g.ECS.ClearVacuums()
		g.ECS.ClearBullets()
		g.createFleet()
		g.CatSystem.Center()

		g.cooldown = config.HitCooldown
		return
	}

	g.ECS.GameState = component.InactiveState
	g.cursor.SetVisible(true)
	g.EventDispatcher.Emit(event.GameOver, g.Stats.Score)
	log.Printf("Game over: score %d, level %d", g.Stats.Score, g.Stats.Level)
}
