package render

import "math"

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

type op struct {
	kind opKind
	pts  [3]Point
}

// Path records drawing commands in local coordinates. Surfaces transform and
// tessellate it when filling or stroking.
type Path struct {
	ops []op
}

// Reset empties the path and keeps its storage.
func (p *Path) Reset() {
	p.ops = p.ops[:0]
}

// Len returns the number of recorded commands.
func (p *Path) Len() int {
	return len(p.ops)
}

func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, op{kind: opMove, pts: [3]Point{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, op{kind: opLine, pts: [3]Point{{x, y}}})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ops = append(p.ops, op{kind: opQuad, pts: [3]Point{{cx, cy}, {x, y}}})
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ops = append(p.ops, op{kind: opCubic, pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

func (p *Path) Close() {
	p.ops = append(p.ops, op{kind: opClose})
}

// Visitor receives path commands already transformed to device space.
type Visitor interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Walk replays the path through v with every point transformed by m. Affine
// transforms map Bézier control points exactly, so curves stay curves.
func (p *Path) Walk(m Matrix, v Visitor) {
	for _, o := range p.ops {
		switch o.kind {
		case opMove:
			x, y := m.Apply(o.pts[0].X, o.pts[0].Y)
			v.MoveTo(x, y)
		case opLine:
			x, y := m.Apply(o.pts[0].X, o.pts[0].Y)
			v.LineTo(x, y)
		case opQuad:
			cx, cy := m.Apply(o.pts[0].X, o.pts[0].Y)
			x, y := m.Apply(o.pts[1].X, o.pts[1].Y)
			v.QuadTo(cx, cy, x, y)
		case opCubic:
			c1x, c1y := m.Apply(o.pts[0].X, o.pts[0].Y)
			c2x, c2y := m.Apply(o.pts[1].X, o.pts[1].Y)
			x, y := m.Apply(o.pts[2].X, o.pts[2].Y)
			v.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case opClose:
			v.Close()
		}
	}
}

// Polyline is a flattened subpath in device space.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten transforms the path by m and approximates curves with line segments
// no longer than tolerance device pixels.
func (p *Path) Flatten(m Matrix, tolerance float64) []Polyline {
	f := &flattener{tol: math.Max(tolerance, 0.05)}
	p.Walk(m, f)
	f.flush()
	return f.out
}

const maxCurveSegments = 64

type flattener struct {
	tol  float64
	out  []Polyline
	cur  Polyline
	last Point
}

func (f *flattener) flush() {
	if len(f.cur.Points) > 1 {
		f.out = append(f.out, f.cur)
	}
	f.cur = Polyline{}
}

func (f *flattener) MoveTo(x, y float64) {
	f.flush()
	f.last = Point{x, y}
	f.cur.Points = []Point{f.last}
}

func (f *flattener) LineTo(x, y float64) {
	if len(f.cur.Points) == 0 {
		f.cur.Points = []Point{f.last}
	}
	f.last = Point{x, y}
	f.cur.Points = append(f.cur.Points, f.last)
}

func (f *flattener) segments(length float64) int {
	n := int(math.Ceil(length / f.tol))
	return max(1, min(n, maxCurveSegments))
}

func (f *flattener) QuadTo(cx, cy, x, y float64) {
	p0 := f.last
	n := f.segments(dist(p0, Point{cx, cy}) + dist(Point{cx, cy}, Point{x, y}))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		f.LineTo(
			u*u*p0.X+2*u*t*cx+t*t*x,
			u*u*p0.Y+2*u*t*cy+t*t*y,
		)
	}
}

func (f *flattener) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p0 := f.last
	n := f.segments(dist(p0, Point{c1x, c1y}) + dist(Point{c1x, c1y}, Point{c2x, c2y}) + dist(Point{c2x, c2y}, Point{x, y}))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		f.LineTo(
			u*u*u*p0.X+3*u*u*t*c1x+3*u*t*t*c2x+t*t*t*x,
			u*u*u*p0.Y+3*u*u*t*c1y+3*u*t*t*c2y+t*t*t*y,
		)
	}
}

func (f *flattener) Close() {
	if len(f.cur.Points) == 0 {
		return
	}
	f.cur.Closed = true
	start := f.cur.Points[0]
	f.flush()
	f.last = start
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
