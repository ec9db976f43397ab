package trail

import "testing"

func TestHSLToHexKnownValues(t *testing.T) {
	tests := []struct {
		h    float64
		want string
	}{
		{0, "#ff0000"},
		{120, "#00ff00"},
		{240, "#0000ff"},
		{60, "#ffff00"},
		{360, "#ff0000"},
		{-120, "#0000ff"},
	}
	for _, tt := range tests {
		if got := HSLToHex(tt.h, 100, 50); got != tt.want {
			t.Errorf("HSLToHex(%v) = %s, want %s", tt.h, got, tt.want)
		}
	}
}

func TestHSLToHexDeterministic(t *testing.T) {
	first := HSLToHex(0, 100, 50)
	for i := 0; i < 10; i++ {
		if got := HSLToHex(0, 100, 50); got != first {
			t.Fatalf("run %d: %s != %s", i, got, first)
		}
	}
}

func TestHueWrapsAndStaysInRange(t *testing.T) {
	var h Hue
	for i := 0; i < 1000; i++ {
		v := h.Advance(7)
		if v < 0 || v >= 360 {
			t.Fatalf("step %d: hue %v out of range", i, v)
		}
	}
	h = Hue{}
	for i := 0; i < 120; i++ {
		h.Advance(3)
	}
	if h.Degrees() != 0 {
		t.Fatalf("120 steps of 3 should wrap to 0, got %v", h.Degrees())
	}
}
