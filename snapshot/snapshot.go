// Package snapshot renders the editor preview headlessly to an image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"sync"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/driver"
	"github.com/automoto/sparkle-cursor/fonts"
	"github.com/automoto/sparkle-cursor/preview"
	"github.com/automoto/sparkle-cursor/render"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/disintegration/imaging"
)

// Options control a snapshot render.
type Options struct {
	Settings settings.Settings
	Frames   int    // Frames simulated before capture
	Seed     uint64 // Particle randomness
	Caption  bool
}

const frameSeconds = 1.0 / 60

var loadFonts = sync.OnceValue(fonts.LoadDefaults)

// rasterSurfaces always hands out the same raster.
type rasterSurfaces struct {
	r *render.Raster
}

func (p rasterSurfaces) Acquire() (render.Surface, error) { return p.r, nil }
func (p rasterSurfaces) Release(render.Surface)           {}

// Render simulates the preview pane for o.Frames frames and returns the last
// frame composited over the pane background.
func Render(o Options) (*image.NRGBA, error) {
	w, h := cfg.Editor.PreviewWidth, cfg.Editor.PreviewHeight
	raster := render.NewRaster(w, h)

	pointer := &driver.Pointer{}
	scheduler := &driver.FrameScheduler{}
	d := driver.New(driver.Options{
		Config:    cfg.Preview,
		Rand:      rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15)),
		Settings:  o.Settings,
		Surfaces:  rasterSurfaces{raster},
		Pointer:   pointer,
		Scheduler: scheduler,
		Style:     render.PreviewStyle(),
		SizeScale: cfg.Cursor.PreviewScale,
	})
	if err := d.Enable(); err != nil {
		return nil, fmt.Errorf("start preview: %w", err)
	}

	path := preview.NewPath(float64(w), float64(h), cfg.Editor)
	for range max(1, o.Frames) {
		pointer.Move(path.Step(frameSeconds))
		scheduler.RunFrame()
	}

	out := imaging.New(w, h, cfg.Editor.PaneColor)
	out = imaging.Overlay(out, raster.Image(), image.Point{}, 1)

	if o.Caption {
		if err := loadFonts(); err != nil {
			return nil, fmt.Errorf("load caption font: %w", err)
		}
		fonts.DrawString(out, fonts.CaptionSmall, 6, h-6, Caption(d.Settings()), color.RGBA{90, 60, 100, 255})
	}
	return out, nil
}

// Caption describes s in one line.
func Caption(s settings.Settings) string {
	trail := string(s.Trail)
	if !s.Trail.Active() {
		trail = "no trail"
	}
	return fmt.Sprintf("%s / %s / %s / size %.0f / intensity %.0f", s.Shape, trail, s.Color, s.CursorSize, s.Intensity)
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
