// internal/component/player.go
package component

// Cat — компонент игрока. Флаги движения выставляются вводом.
type Cat struct {
	MovingLeft  bool
	MovingRight bool
}
