package settings

import (
	"math"
	"testing"
)

func TestMergeEmptyPatchKeepsDefaults(t *testing.T) {
	got := Merge(Defaults(), Patch{})
	if got != Defaults() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestMergeOverlaysPresentFields(t *testing.T) {
	size := 32.0
	trail := TrailHearts
	got := Merge(Defaults(), Patch{CursorSize: &size, Trail: &trail})

	if got.CursorSize != 32 {
		t.Errorf("cursor size = %v, want 32", got.CursorSize)
	}
	if got.Trail != TrailHearts {
		t.Errorf("trail = %q, want hearts", got.Trail)
	}
	if got.Color != "#ff69b4" || got.Shape != ShapeArrow || got.Intensity != 5 || !got.Enabled {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestMergeFallsBackOnMalformedValues(t *testing.T) {
	base := Defaults()
	base.Color = "#00ff00"
	base.CursorSize = 40

	badColor := "hotpink"
	badSize := -3.0
	nanIntensity := math.NaN()
	got := Merge(base, Patch{Color: &badColor, CursorSize: &badSize, Intensity: &nanIntensity})

	if got.Color != "#ff69b4" {
		t.Errorf("color = %q, want default", got.Color)
	}
	if got.CursorSize != 24 {
		t.Errorf("size = %v, want default 24", got.CursorSize)
	}
	if got.Intensity != 5 {
		t.Errorf("intensity = %v, want default 5", got.Intensity)
	}
}

func TestMergeClampsIntensity(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-2, 0},
		{0, 0},
		{7.5, 7.5},
		{10, 10},
		{99, 10},
	}
	for _, tt := range tests {
		v := tt.in
		if got := Merge(Defaults(), Patch{Intensity: &v}).Intensity; got != tt.want {
			t.Errorf("intensity %v: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMergeNormalizesColor(t *testing.T) {
	short := "#FFF"
	got := Merge(Defaults(), Patch{Color: &short})
	if got.Color != "#ffffff" {
		t.Fatalf("color = %q, want #ffffff", got.Color)
	}
}

func TestUnknownNames(t *testing.T) {
	if CursorShape("triangle").Known() {
		t.Error("triangle should not be a known shape")
	}
	if TrailType("confetti").Active() {
		t.Error("unknown trail should not be active")
	}
	if TrailNone.Active() {
		t.Error("none trail should not be active")
	}
	for _, tr := range Trails {
		if !tr.Active() {
			t.Errorf("%q should be active", tr)
		}
	}
}

func TestFillColorFallsBack(t *testing.T) {
	s := Defaults()
	s.Color = "nope"
	c := s.FillColor()
	if c.R != 0xff || c.G != 0x69 || c.B != 0xb4 || c.A != 0xff {
		t.Fatalf("fill colour = %+v, want default pink", c)
	}
}
