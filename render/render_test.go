package render

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/trail"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatrixAppliesLocalTransformsInOrder(t *testing.T) {
	m := Translation(10, 0).Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if !near(x, 10) || !near(y, 1) {
		t.Fatalf("Apply(1,0) = (%v, %v), want (10, 1)", x, y)
	}

	s := Identity().Scale(2, 2)
	if !near(s.ScaleFactor(), 2) {
		t.Errorf("ScaleFactor = %v, want 2", s.ScaleFactor())
	}
}

func TestSparklePathStartsAtTop(t *testing.T) {
	var p Path
	SparklePath(&p, 10)
	if p.Len() != 9 {
		t.Fatalf("Len = %d, want 9 (move, 7 lines, close)", p.Len())
	}
	lines := p.Flatten(Identity(), flattenTolerance)
	if len(lines) != 1 || !lines[0].Closed {
		t.Fatalf("want one closed subpath, got %+v", lines)
	}
	first := lines[0].Points[0]
	if !near(first.X, 0) || !near(first.Y, -10) {
		t.Errorf("first point = %+v, want (0, -10)", first)
	}
	inner := lines[0].Points[1]
	if r := math.Hypot(inner.X, inner.Y); !near(r, 3) {
		t.Errorf("inner radius = %v, want 3", r)
	}
}

func TestFlattenEndsCurvesOnTheirEndpoint(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)
	p.QuadTo(15, -5, 20, 0)
	lines := p.Flatten(Identity(), 1)
	if len(lines) != 1 {
		t.Fatalf("subpaths = %d, want 1", len(lines))
	}
	pts := lines[0].Points
	last := pts[len(pts)-1]
	if !near(last.X, 20) || !near(last.Y, 0) {
		t.Errorf("last point = %+v, want (20, 0)", last)
	}
	if len(pts) < 10 {
		t.Errorf("curves flattened to only %d points", len(pts))
	}
}

func renderCursor(shape settings.CursorShape) []byte {
	r := NewRaster(48, 48)
	DrawCursor(r, 10, 10, shape, 24, color.NRGBA{R: 255, G: 105, B: 180, A: 255}, PageStyle())
	return r.Image().Pix
}

func TestUnknownShapeRendersAsArrow(t *testing.T) {
	arrow := renderCursor(settings.ShapeArrow)
	if !bytes.Equal(renderCursor("triangle"), arrow) {
		t.Fatal("shape=triangle differs from shape=arrow")
	}
	if bytes.Equal(renderCursor(settings.ShapeHeart), arrow) {
		t.Fatal("heart rendered the same pixels as arrow")
	}
	if bytes.Equal(make([]byte, len(arrow)), arrow) {
		t.Fatal("arrow drew nothing")
	}
}

func TestDrawFramePaintsCursorLast(t *testing.T) {
	s := settings.Defaults()
	ps := []trail.Particle{
		{X: 5, Y: 5, Size: 4, Color: color.NRGBA{R: 1, A: 255}, Kind: settings.TrailSparkles, Life: 1},
		{X: 6, Y: 6, Size: 4, Color: color.NRGBA{R: 2, A: 255}, Kind: settings.TrailHearts, Life: 1},
	}
	var rec Recorder
	DrawFrame(&rec, Frame{Particles: ps, X: 20, Y: 20, Settings: s, Style: PreviewStyle()})

	if rec.Calls[0].Op != "clear" {
		t.Fatalf("first call = %q, want clear", rec.Calls[0].Op)
	}
	if rec.Calls[1].Color.R != 1 || rec.Calls[2].Color.R != 2 {
		t.Fatalf("particles not drawn in order: %+v", rec.Calls[1:3])
	}
	last := rec.Calls[len(rec.Calls)-1]
	if last.Op != "fill" || last.Color != s.FillColor() {
		t.Fatalf("last call = %+v, want cursor fill %v", last, s.FillColor())
	}
	if rec.Count("stroke") != 1 {
		t.Errorf("strokes = %d, want one cursor outline", rec.Count("stroke"))
	}
}

func TestParticleOpacityFollowsLife(t *testing.T) {
	ps := []trail.Particle{
		{Size: 4, Color: color.NRGBA{R: 255, A: 255}, Kind: settings.TrailRainbow, Life: 0.5},
		{Size: 4, Color: color.NRGBA{R: 255, A: 255}, Kind: "glitter", Life: 1},
		{Size: 4, Color: color.NRGBA{R: 255, A: 255}, Kind: settings.TrailSparkles, Life: 0},
	}
	var rec Recorder
	DrawParticles(&rec, ps)
	if len(rec.Calls) != 1 {
		t.Fatalf("calls = %d, want 1 (unknown kind and dead particle skipped)", len(rec.Calls))
	}
	if got := rec.Calls[0].Color.A; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
}

func TestPageShadowOffsetOnlyForOutlinedGlyphs(t *testing.T) {
	fill := color.NRGBA{R: 255, A: 255}
	for _, tc := range []struct {
		shape  settings.CursorShape
		offset bool
	}{
		{settings.ShapeArrow, true},
		{settings.ShapePointer, true},
		{settings.ShapeHeart, false},
		{settings.ShapeSparkle, false},
	} {
		var rec Recorder
		DrawCursor(&rec, 0, 0, tc.shape, 24, fill, PageStyle())
		shadow := rec.Calls[0].Matrix
		body := rec.Calls[len(rec.Calls)-1].Matrix
		moved := !near(shadow[2], body[2]) || !near(shadow[5], body[5])
		if moved != tc.offset {
			t.Errorf("%s: shadow offset = %v, want %v", tc.shape, moved, tc.offset)
		}
	}
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(10, 10)
	var p Path
	p.MoveTo(2, 2)
	p.LineTo(8, 2)
	p.LineTo(8, 8)
	p.LineTo(2, 8)
	p.Close()
	r.Fill(&p, Identity(), color.NRGBA{R: 255, A: 255})

	in := r.Image().NRGBAAt(5, 5)
	if in.A != 255 || in.R < 250 {
		t.Errorf("interior = %v, want opaque red", in)
	}
	if out := r.Image().NRGBAAt(0, 0); out.A != 0 {
		t.Errorf("outside = %v, want transparent", out)
	}

	r.Clear()
	if r.Image().NRGBAAt(5, 5).A != 0 {
		t.Error("Clear left pixels behind")
	}
}

func TestRasterStrokeOverlapsDoNotCancel(t *testing.T) {
	r := NewRaster(10, 10)
	var p Path
	p.MoveTo(2, 2)
	p.LineTo(8, 2)
	p.LineTo(8, 8)
	p.LineTo(2, 8)
	p.Close()
	r.Stroke(&p, Identity(), color.NRGBA{G: 255, A: 255}, 4)

	if c := r.Image().NRGBAAt(2, 2); c.A != 255 {
		t.Errorf("corner = %v, want opaque", c)
	}
	if c := r.Image().NRGBAAt(5, 5); c.A != 0 {
		t.Errorf("centre = %v, want untouched", c)
	}
}
