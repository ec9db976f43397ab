// Package ebitensurface implements render.Surface on an offscreen ebiten image.
package ebitensurface

import (
	"errors"
	"image"
	"image/color"

	"github.com/automoto/sparkle-cursor/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

func init() {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Surface paints paths into an offscreen image that the host blits each Draw.
type Surface struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func New(w, h int) *Surface {
	return &Surface{img: ebiten.NewImage(w, h)}
}

// Image returns the offscreen target.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) resize(w, h int) {
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) Fill(p *render.Path, m render.Matrix, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	var vp vector.Path
	p.Walk(m, pathAdapter{&vp})
	s.vs, s.is = vp.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(c, ebiten.FillRuleNonZero)
}

func (s *Surface) Stroke(p *render.Path, m render.Matrix, c color.NRGBA, width float64) {
	w := width * m.ScaleFactor()
	if c.A == 0 || w <= 0 {
		return
	}
	var vp vector.Path
	p.Walk(m, pathAdapter{&vp})
	op := &vector.StrokeOptions{
		Width:    float32(w),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vs, s.is = vp.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.draw(c, ebiten.FillRuleFillAll)
}

func (s *Surface) draw(c color.NRGBA, rule ebiten.FillRule) {
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  rule,
		AntiAlias: true,
	}
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

// pathAdapter feeds device-space commands into an ebiten vector path.
type pathAdapter struct {
	p *vector.Path
}

func (a pathAdapter) MoveTo(x, y float64) { a.p.MoveTo(float32(x), float32(y)) }
func (a pathAdapter) LineTo(x, y float64) { a.p.LineTo(float32(x), float32(y)) }
func (a pathAdapter) Close()              { a.p.Close() }

func (a pathAdapter) QuadTo(cx, cy, x, y float64) {
	a.p.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

func (a pathAdapter) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	a.p.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

var errNoSize = errors.New("window has no size yet")

// Provider hands the driver one Surface sized to the host's layout.
type Provider struct {
	w, h    int
	surface *Surface
	held    bool
}

func NewProvider() *Provider {
	return &Provider{}
}

// Resize records the size the next Acquire uses and resizes a live surface.
func (p *Provider) Resize(w, h int) {
	p.w, p.h = w, h
	if p.surface != nil && w > 0 && h > 0 {
		p.surface.resize(w, h)
	}
}

func (p *Provider) Acquire() (render.Surface, error) {
	if p.w <= 0 || p.h <= 0 {
		return nil, errNoSize
	}
	if p.surface == nil {
		p.surface = New(p.w, p.h)
	}
	p.held = true
	return p.surface, nil
}

func (p *Provider) Release(render.Surface) {
	p.held = false
}

// Current returns the surface while a driver holds it, or nil.
func (p *Provider) Current() *Surface {
	if !p.held {
		return nil
	}
	return p.surface
}
