package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// flattenTolerance is the maximum curve segment length in device pixels.
const flattenTolerance = 0.5

const joinSides = 12

// Raster is a software Surface backed by an *image.NRGBA. It is used for
// headless snapshots and for pixel comparisons in tests.
type Raster struct {
	img *image.NRGBA
	z   *vector.Rasterizer
}

// NewRaster allocates a transparent w×h surface.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img: image.NewNRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image. It is overwritten by later draws.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

func (r *Raster) Fill(p *Path, m Matrix, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	r.begin()
	for _, pl := range p.Flatten(m, flattenTolerance) {
		r.polygon(pl.Points)
	}
	r.paint(c)
}

// Stroke covers every flattened segment with a quad and puts a round join on
// every vertex. All pieces share one winding so overlaps never cancel.
func (r *Raster) Stroke(p *Path, m Matrix, c color.NRGBA, width float64) {
	hw := width * m.ScaleFactor() / 2
	if c.A == 0 || hw <= 0 {
		return
	}
	r.begin()
	for _, pl := range p.Flatten(m, flattenTolerance) {
		pts := pl.Points
		n := len(pts)
		segs := n - 1
		if pl.Closed {
			segs = n
		}
		for i := range segs {
			r.segment(pts[i], pts[(i+1)%n], hw)
		}
		for _, pt := range pts {
			r.disc(pt, hw)
		}
	}
	r.paint(c)
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) paint(c color.NRGBA) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) polygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		r.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.z.ClosePath()
}

func (r *Raster) segment(a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	r.polygon([]Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	})
}

// disc is walked clockwise in y-down space to match the segment quads.
func (r *Raster) disc(c Point, radius float64) {
	pts := make([]Point, joinSides)
	for i := range pts {
		a := -float64(i) * 2 * math.Pi / joinSides
		pts[i] = Point{c.X + math.Cos(a)*radius, c.Y + math.Sin(a)*radius}
	}
	r.polygon(pts)
}
