package ui

import "github.com/hajimehoshi/ebiten/v2"

// Cursor управляет системным курсором через ebiten.
type Cursor struct{}

func (Cursor) SetVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}
