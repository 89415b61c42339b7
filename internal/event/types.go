// internal/event/types.go
package event

const (
	GameStarted      EventType = "GameStarted"      // Новая партия
	GameOver         EventType = "GameOver"         // Жизни кончились
	BulletFired      EventType = "BulletFired"      // Выстрел
	VacuumDestroyed  EventType = "VacuumDestroyed"  // Data: число сбитых за тик
	ScoreChanged     EventType = "ScoreChanged"     // Счёт изменился
	HighScoreChanged EventType = "HighScoreChanged" // Новый рекорд
	LevelChanged     EventType = "LevelChanged"     // Новый уровень
	WaveCleared      EventType = "WaveCleared"      // Флот уничтожен
	CatHit           EventType = "CatHit"           // Кот потерял жизнь
	LivesChanged     EventType = "LivesChanged"
)
