package systems

import (
	"github.com/automoto/sparkle-cursor/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawCanvas blits each driver's offscreen surface at its canvas position.
func DrawCanvas(e *ecs.ECS, screen *ebiten.Image) {
	components.Canvas.Each(e.World, func(entry *donburi.Entry) {
		canvas := components.Canvas.Get(entry)
		if canvas.Background != nil {
			vector.FillRect(screen,
				float32(canvas.X), float32(canvas.Y),
				float32(canvas.Width), float32(canvas.Height),
				canvas.Background, false)
		}

		surface := components.Driver.Get(entry).Surfaces.Current()
		if surface == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(canvas.X, canvas.Y)
		screen.DrawImage(surface.Image(), op)
	})
}

// ResizeCanvases makes every full-window canvas match the window layout.
func ResizeCanvases(e *ecs.ECS, width, height int) {
	components.Canvas.Each(e.World, func(entry *donburi.Entry) {
		canvas := components.Canvas.Get(entry)
		if canvas.Background != nil {
			return
		}
		canvas.Width, canvas.Height = width, height
		components.Driver.Get(entry).Surfaces.Resize(width, height)
	})
}
