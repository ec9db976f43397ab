package factory

import (
	"github.com/automoto/sparkle-cursor/archetypes"
	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/driver"
	"github.com/automoto/sparkle-cursor/ebitensurface"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/render"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay spawns the full-window cursor renderer. Its surface is sized
// later by the window layout.
func CreateOverlay(ecs *ecs.ECS, s settings.Settings, listener *network.Listener, cursor driver.CursorSuppressor) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)

	pointer := &driver.Pointer{}
	scheduler := &driver.FrameScheduler{}
	surfaces := ebitensurface.NewProvider()
	d := driver.New(driver.Options{
		Config:    cfg.Page,
		Settings:  s,
		Surfaces:  surfaces,
		Pointer:   pointer,
		Cursor:    cursor,
		Scheduler: scheduler,
		Style:     render.PageStyle(),
	})

	components.Pointer.SetValue(overlay, components.PointerData{Source: pointer})
	components.Driver.SetValue(overlay, components.DriverData{
		Driver:    d,
		Scheduler: scheduler,
		Surfaces:  surfaces,
	})
	components.Canvas.SetValue(overlay, components.CanvasData{})
	components.Inbox.SetValue(overlay, components.InboxData{Listener: listener})

	return overlay
}
