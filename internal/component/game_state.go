package component

// GameState — фаза игры
type GameState int

const (
	InactiveState GameState = iota // показана кнопка Play, обновлений нет
	ActiveState
)
