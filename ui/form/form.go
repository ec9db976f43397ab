// Package form holds the settings editor's state and the rules each control
// applies, independent of any widget toolkit.
package form

import (
	"fmt"
	"math"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
)

// Form is the editor model. Every change calls OnChange with the new settings.
type Form struct {
	s        settings.Settings
	cfg      config.EditorConfig
	OnChange func(settings.Settings)
}

func New(s settings.Settings, cfg config.EditorConfig) *Form {
	return &Form{s: s, cfg: cfg}
}

func (f *Form) Settings() settings.Settings {
	return f.s
}

func (f *Form) changed() {
	if f.OnChange != nil {
		f.OnChange(f.s)
	}
}

func (f *Form) ToggleEnabled() {
	f.s.Enabled = !f.s.Enabled
	f.changed()
}

// NextColor moves to the next palette entry. A colour outside the palette
// moves to the first entry.
func (f *Form) NextColor() {
	if len(f.cfg.Palette) == 0 {
		return
	}
	next := 0
	for i, c := range f.cfg.Palette {
		if n, ok := settings.NormalizeColor(c); ok && n == f.s.Color {
			next = (i + 1) % len(f.cfg.Palette)
			break
		}
	}
	f.s = settings.Merge(f.s, settings.Patch{Color: &f.cfg.Palette[next]})
	f.changed()
}

// StepSize changes the cursor size by dir steps within the allowed range.
func (f *Form) StepSize(dir int) {
	v := math.Round(f.s.CursorSize) + float64(dir)*f.cfg.CursorStep
	v = math.Max(f.cfg.MinCursorSize, math.Min(f.cfg.MaxCursorSize, v))
	if v == f.s.CursorSize {
		return
	}
	f.s.CursorSize = v
	f.changed()
}

// StepIntensity changes the intensity by dir steps within [0, 10].
func (f *Form) StepIntensity(dir int) {
	v := math.Round(f.s.Intensity) + float64(dir)*f.cfg.IntensityStep
	v = math.Max(settings.MinIntensity, math.Min(settings.MaxIntensity, v))
	if v == f.s.Intensity {
		return
	}
	f.s.Intensity = v
	f.changed()
}

func (f *Form) SelectShape(shape settings.CursorShape) {
	f.s.Shape = shape
	f.changed()
}

// SelectTrail picks a trail; picking the active one turns the trail off.
func (f *Form) SelectTrail(t settings.TrailType) {
	if f.s.Trail == t {
		f.s.Trail = settings.TrailNone
	} else {
		f.s.Trail = t
	}
	f.changed()
}

func (f *Form) EnabledLabel() string {
	if f.s.Enabled {
		return "on ✨"
	}
	return "off"
}

func (f *Form) SizeLabel() string {
	return fmt.Sprintf("%.0f", f.s.CursorSize)
}

func (f *Form) IntensityLabel() string {
	return fmt.Sprintf("%.0f", f.s.Intensity)
}

// OptionLabel marks the active choice in a button group.
func OptionLabel(name string, active bool) string {
	if active {
		return "● " + name
	}
	return name
}

// Title is the window title; a disabled cursor shows an OFF badge.
func (f *Form) Title() string {
	if f.s.Enabled {
		return config.AppName
	}
	return config.AppName + " [OFF]"
}
