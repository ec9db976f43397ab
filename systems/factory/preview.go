package factory

import (
	"github.com/automoto/sparkle-cursor/archetypes"
	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/driver"
	"github.com/automoto/sparkle-cursor/ebitensurface"
	"github.com/automoto/sparkle-cursor/preview"
	"github.com/automoto/sparkle-cursor/render"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePreview spawns the editor's live preview pane and starts its driver.
// The preview runs whether or not the cursor is enabled.
func CreatePreview(ecs *ecs.ECS, s settings.Settings) *donburi.Entry {
	pane := archetypes.Preview.Spawn(ecs)
	w, h := cfg.Editor.PreviewWidth, cfg.Editor.PreviewHeight

	pointer := &driver.Pointer{}
	scheduler := &driver.FrameScheduler{}
	surfaces := ebitensurface.NewProvider()
	surfaces.Resize(w, h)
	d := driver.New(driver.Options{
		Config:    cfg.Preview,
		Settings:  s,
		Surfaces:  surfaces,
		Pointer:   pointer,
		Scheduler: scheduler,
		Style:     render.PreviewStyle(),
		SizeScale: cfg.Cursor.PreviewScale,
	})

	components.Pointer.SetValue(pane, components.PointerData{Source: pointer})
	components.Driver.SetValue(pane, components.DriverData{
		Driver:    d,
		Scheduler: scheduler,
		Surfaces:  surfaces,
	})
	components.Canvas.SetValue(pane, components.CanvasData{
		X:          float64(cfg.Editor.PreviewX),
		Y:          float64(cfg.Editor.PreviewY),
		Width:      w,
		Height:     h,
		Background: cfg.Editor.PaneColor,
	})
	components.Preview.SetValue(pane, components.PreviewData{
		Path: preview.NewPath(float64(w), float64(h), cfg.Editor),
	})

	_ = d.Enable()
	return pane
}
