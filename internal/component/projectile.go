// internal/component/projectile.go
package component

// Bullet помечает сущность как пулю. Скорость берётся из текущих настроек,
// поэтому ускорение уровня действует и на летящие пули.
type Bullet struct{}
