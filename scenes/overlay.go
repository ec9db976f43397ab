package scenes

import (
	"log"
	"sync"

	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/driver"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/automoto/sparkle-cursor/systems"
	"github.com/automoto/sparkle-cursor/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverlayScene draws the custom cursor and trail over the whole desktop in a
// transparent, click-through window.
type OverlayScene struct {
	ecs      *ecs.ECS
	store    *store.Store
	listener *network.Listener
	overlay  *donburi.Entry
	once     sync.Once

	width, height int
}

func NewOverlayScene(st *store.Store, listener *network.Listener) *OverlayScene {
	return &OverlayScene{store: st, listener: listener}
}

func (o *OverlayScene) Update() {
	o.once.Do(o.configure)
	o.ecs.Update()
}

func (o *OverlayScene) Draw(screen *ebiten.Image) {
	// Transparent window: anything not drawn shows the desktop
	screen.Clear()

	if o.ecs == nil {
		return
	}
	o.ecs.Draw(screen)
}

func (o *OverlayScene) Layout(width, height int) (int, int) {
	if width != o.width || height != o.height {
		o.width, o.height = width, height
		if o.ecs != nil {
			systems.ResizeCanvases(o.ecs, width, height)
			o.retryStart()
		}
	}
	return width, height
}

func (o *OverlayScene) configure() {
	if m := ebiten.Monitor(); m != nil {
		w, h := m.Size()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowPosition(0, 0)
	}

	o.ecs = ecs.NewECS(donburi.NewWorld())

	// Messages first so a settings change lands before this frame's tick
	o.ecs.AddSystem(systems.UpdateInbox)
	o.ecs.AddSystem(systems.UpdateCursorPointer)
	o.ecs.AddSystem(systems.UpdateVisibility)
	o.ecs.AddSystem(systems.UpdateFrames)

	o.ecs.AddRenderer(cfg.Default, systems.DrawCanvas)
	o.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	s := o.store.Load()
	o.overlay = factory.CreateOverlay(o.ecs, s, o.listener, systems.NativeCursor{})
	systems.ResizeCanvases(o.ecs, o.width, o.height)

	if err := components.Driver.Get(o.overlay).Driver.Replace(s); err != nil {
		log.Printf("[overlay] Warning: Could not start: %v", err)
	}
}

// retryStart enables a driver whose first start found no surface.
func (o *OverlayScene) retryStart() {
	d := components.Driver.Get(o.overlay).Driver
	if d.State() != driver.Stopped || !d.Settings().Enabled {
		return
	}
	if err := d.Enable(); err != nil {
		log.Printf("[overlay] Warning: Could not start: %v", err)
	}
}
