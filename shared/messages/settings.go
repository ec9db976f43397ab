package messages

import "github.com/automoto/sparkle-cursor/settings"

// Message is anything the overlay can apply as a settings patch.
type Message interface {
	Patch() settings.Patch
}

// Toggle is sent to turn the overlay cursor on or off.
type Toggle struct {
	Enabled bool
}

func (m Toggle) Patch() settings.Patch {
	return settings.Patch{Enabled: &m.Enabled}
}

// SettingsUpdate carries a complete settings object. An empty Trail means no trail.
type SettingsUpdate struct {
	Enabled    bool
	Color      string
	Shape      string
	CursorSize float64
	Trail      string
	Intensity  float64
}

// NewSettingsUpdate wraps s for sending.
func NewSettingsUpdate(s settings.Settings) SettingsUpdate {
	return SettingsUpdate{
		Enabled:    s.Enabled,
		Color:      s.Color,
		Shape:      string(s.Shape),
		CursorSize: s.CursorSize,
		Trail:      string(s.Trail),
		Intensity:  s.Intensity,
	}
}

// Settings returns the update merged over the defaults.
func (m SettingsUpdate) Settings() settings.Settings {
	return settings.Merge(settings.Defaults(), m.Patch())
}

func (m SettingsUpdate) Patch() settings.Patch {
	shape := settings.CursorShape(m.Shape)
	trail := settings.TrailType(m.Trail)
	return settings.Patch{
		Enabled:    &m.Enabled,
		Color:      &m.Color,
		Shape:      &shape,
		CursorSize: &m.CursorSize,
		Trail:      &trail,
		Intensity:  &m.Intensity,
	}
}
