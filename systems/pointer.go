package systems

import (
	"github.com/automoto/sparkle-cursor/components"
	"github.com/automoto/sparkle-cursor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursorPointer feeds the real cursor position to the overlay driver.
func UpdateCursorPointer(e *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	tags.Overlay.Each(e.World, func(entry *donburi.Entry) {
		canvas := components.Canvas.Get(entry)
		components.Pointer.Get(entry).Source.Move(float64(x)-canvas.X, float64(y)-canvas.Y)
	})
}

// UpdatePreviewPointer moves the demo pointer along its figure-8.
func UpdatePreviewPointer(e *ecs.ECS) {
	dt := frameSeconds()
	tags.Preview.Each(e.World, func(entry *donburi.Entry) {
		x, y := components.Preview.Get(entry).Path.Step(dt)
		components.Pointer.Get(entry).Source.Move(x, y)
	})
}

func frameSeconds() float64 {
	if fps := ebiten.ActualFPS(); fps > 1 {
		return 1 / fps
	}
	return 1.0 / 60
}
