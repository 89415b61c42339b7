package component

// Vacuum — пылесос, член флота. Направление движения общее для всего флота
// и хранится в настройках.
type Vacuum struct{}
