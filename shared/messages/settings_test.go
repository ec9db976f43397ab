package messages

import (
	"testing"

	"github.com/automoto/sparkle-cursor/settings"
)

func TestSettingsUpdateCarriesEveryField(t *testing.T) {
	s := settings.Settings{
		Enabled:    false,
		Color:      "#123456",
		Shape:      settings.ShapeSparkle,
		CursorSize: 40,
		Trail:      settings.TrailNone,
		Intensity:  2,
	}
	base := settings.Defaults()
	if got := settings.Merge(base, NewSettingsUpdate(s).Patch()); got != s {
		t.Fatalf("merged = %+v, want %+v", got, s)
	}
}

func TestSettingsUpdateRepairsBadFields(t *testing.T) {
	got := SettingsUpdate{Color: "pink", CursorSize: -1, Trail: "glitter", Intensity: 99}.Settings()
	if got.Color != settings.Defaults().Color || got.CursorSize != 24 || got.Intensity != 10 {
		t.Fatalf("got %+v", got)
	}
	if got.Trail.Active() {
		t.Errorf("unknown trail %q treated as active", got.Trail)
	}
}

func TestToggleOnlyTouchesEnabled(t *testing.T) {
	p := Toggle{Enabled: false}.Patch()
	if p.Enabled == nil || *p.Enabled {
		t.Fatalf("Enabled = %v", p.Enabled)
	}
	p.Enabled = nil
	if !p.Empty() {
		t.Errorf("toggle patch set more than enabled: %+v", p)
	}
}
