package systems

import "github.com/hajimehoshi/ebiten/v2"

// NativeCursor hides the system cursor over the window while the custom one
// is drawn.
type NativeCursor struct{}

func (NativeCursor) Enable() {
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (NativeCursor) Disable() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
