package preview

import (
	"math"
	"testing"

	"github.com/automoto/sparkle-cursor/config"
)

func TestPathStartsCentred(t *testing.T) {
	p := NewPath(200, 100, config.Editor)
	if x, y := p.Position(); x != 100 || y != 50 {
		t.Fatalf("start = (%v, %v), want (100, 50)", x, y)
	}
}

func TestPathStaysInsideAmplitude(t *testing.T) {
	cfg := config.Editor
	w, h := float64(cfg.PreviewWidth), float64(cfg.PreviewHeight)
	p := NewPath(w, h, cfg)
	maxDX := w * cfg.PreviewAmplitudeX
	maxDY := h * cfg.PreviewAmplitudeY

	moved := false
	for range 600 {
		x, y := p.Step(1.0 / 60)
		if math.Abs(x-w/2) > maxDX+1e-6 || math.Abs(y-h/2) > maxDY+1e-6 {
			t.Fatalf("pointer (%v, %v) left the figure-8 bounds", x, y)
		}
		if math.Abs(x-w/2) > maxDX/2 {
			moved = true
		}
	}
	if !moved {
		t.Error("pointer never swept across the pane")
	}
}

func TestTargetFollowsSine(t *testing.T) {
	cfg := config.Editor
	p := NewPath(100, 100, cfg)
	quarter := cfg.PreviewPeriodX / 4
	p.Step(quarter)
	tx, _ := p.Target()
	want := 50 + 100*cfg.PreviewAmplitudeX
	if math.Abs(tx-want) > 0.01 {
		t.Errorf("target x after a quarter period = %v, want %v", tx, want)
	}
}
