package systems

import (
	"fmt"

	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints each driver's state in the corner of its canvas.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}

	components.Canvas.Each(ecs.World, func(entry *donburi.Entry) {
		canvas := components.Canvas.Get(entry)
		d := components.Driver.Get(entry).Driver

		msg := fmt.Sprintf("%s  particles: %d  fps: %.0f",
			d.State(), len(d.Engine().Particles()), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, msg, int(canvas.X)+4, int(canvas.Y)+4)
	})
}
