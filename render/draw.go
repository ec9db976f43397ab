// Package render turns the trail simulation and the cursor settings into
// paths on a Surface. It has no window or GPU dependency.
package render

import (
	"image/color"
	"math"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/trail"
)

// CursorStyle controls the outline and drop shadow of the cursor glyph.
type CursorStyle struct {
	Outline      color.NRGBA
	OutlineWidth float64
	Shadow       bool
	ShadowColor  color.NRGBA
	ShadowBlur   float64
	ShadowOffset Point
}

// PageStyle is the overlay cursor: outlined with a soft drop shadow.
func PageStyle() CursorStyle {
	c := config.Cursor
	return CursorStyle{
		Outline:      c.OutlineColor,
		OutlineWidth: c.OutlineWidth,
		Shadow:       true,
		ShadowColor:  c.ShadowColor,
		ShadowBlur:   c.ShadowBlur,
		ShadowOffset: Point{c.ShadowOffsetX, c.ShadowOffsetY},
	}
}

// PreviewStyle is the editor preview cursor: outline only.
func PreviewStyle() CursorStyle {
	c := config.Cursor
	return CursorStyle{Outline: c.OutlineColor, OutlineWidth: c.OutlineWidth}
}

// Frame is everything needed to paint one frame.
type Frame struct {
	Particles []trail.Particle
	X, Y      float64 // Pointer position
	Settings  settings.Settings
	SizeScale float64 // Multiplier on Settings.CursorSize; 0 means 1
	Style     CursorStyle
}

// DrawFrame clears the surface, paints the particles and then the cursor on top.
func DrawFrame(dst Surface, f Frame) {
	dst.Clear()
	DrawParticles(dst, f.Particles)
	scale := f.SizeScale
	if scale <= 0 {
		scale = 1
	}
	DrawCursor(dst, f.X, f.Y, f.Settings.Shape, f.Settings.CursorSize*scale, f.Settings.FillColor(), f.Style)
}

// DrawParticles paints particles in order. Opacity and size follow life.
func DrawParticles(dst Surface, ps []trail.Particle) {
	var p Path
	for i := range ps {
		pt := &ps[i]
		if pt.Life <= 0 {
			continue
		}
		size := pt.Size * pt.Life
		p.Reset()
		switch pt.Kind {
		case settings.TrailSparkles, settings.TrailRainbow:
			SparklePath(&p, size)
		case settings.TrailHearts:
			HeartPath(&p, size*0.6, 1)
		default:
			continue
		}
		m := Translation(pt.X, pt.Y).Rotate(pt.Rotation)
		dst.Fill(&p, m, withAlpha(pt.Color, pt.Life))
	}
}

// glyph is one cursor variant: it appends its outline and returns the local
// transform that scales it to the requested size.
type glyph struct {
	build        func(p *Path, size float64) Matrix
	shadowOffset bool
}

var (
	arrowGlyph = glyph{
		build: func(p *Path, size float64) Matrix {
			ArrowPath(p)
			k := size / config.Cursor.ReferenceSize
			return Identity().Scale(k, k)
		},
		shadowOffset: true,
	}
	pointerGlyph = glyph{
		build: func(p *Path, size float64) Matrix {
			PointerPath(p)
			k := size / config.Cursor.ReferenceSize
			return Identity().Scale(k, k)
		},
		shadowOffset: true,
	}
	heartGlyph = glyph{
		build: func(p *Path, size float64) Matrix {
			HeartPath(p, size*0.5, 1.2)
			return Identity()
		},
	}
	sparkleGlyph = glyph{
		build: func(p *Path, size float64) Matrix {
			SparklePath(p, size*0.5)
			return Identity()
		},
	}
)

// cursorFor maps a shape name to its glyph. Unknown names draw the arrow.
func cursorFor(shape settings.CursorShape) glyph {
	switch shape {
	case settings.ShapeHeart:
		return heartGlyph
	case settings.ShapeSparkle:
		return sparkleGlyph
	case settings.ShapePointer:
		return pointerGlyph
	default:
		return arrowGlyph
	}
}

// DrawCursor paints the glyph for shape at (x, y): shadow, outline, then fill.
func DrawCursor(dst Surface, x, y float64, shape settings.CursorShape, size float64, fill color.NRGBA, style CursorStyle) {
	if size <= 0 || math.IsNaN(size) {
		return
	}
	g := cursorFor(shape)
	var p Path
	m := Translation(x, y).Mul(g.build(&p, size))

	if style.Shadow {
		drawShadow(dst, &p, m, g.shadowOffset, style)
	}
	if style.OutlineWidth > 0 {
		dst.Stroke(&p, m, style.Outline, style.OutlineWidth)
	}
	dst.Fill(&p, m, fill)
}

const shadowPasses = 3

// drawShadow approximates a blurred shadow with a few widening low-alpha strokes
// under a filled silhouette. Blur and offset are in device pixels.
func drawShadow(dst Surface, p *Path, m Matrix, offset bool, style CursorStyle) {
	sm := m
	if offset {
		sm = Translation(style.ShadowOffset.X, style.ShadowOffset.Y).Mul(m)
	}
	k := m.ScaleFactor()
	if k == 0 {
		return
	}
	c := style.ShadowColor
	c.A = uint8(int(c.A) / shadowPasses)
	for i := shadowPasses; i >= 1; i-- {
		spread := style.ShadowBlur * float64(i) / shadowPasses
		dst.Stroke(p, sm, c, style.OutlineWidth+2*spread/k)
	}
	dst.Fill(p, sm, c)
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}
