package render

import "math"

// SparklePath appends a four-pointed star of outer radius r centred on the
// origin, first point straight up.
func SparklePath(p *Path, r float64) {
	for i := range 4 {
		a := float64(i)*math.Pi/2 - math.Pi/2
		x, y := math.Cos(a)*r, math.Sin(a)*r
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
		ia := a + math.Pi/4
		p.LineTo(math.Cos(ia)*r*0.3, math.Sin(ia)*r*0.3)
	}
	p.Close()
}

// HeartPath appends a heart built from two mirrored cubics. s is the half size
// and k the lobe factor: particles use k=1, the cursor glyph k=1.2.
func HeartPath(p *Path, s, k float64) {
	h := k / 2
	p.MoveTo(0, s*0.3)
	p.CubicTo(-s*k, -s*h, -s*k, s*h, 0, s*k)
	p.CubicTo(s*k, s*h, s*k, -s*h, 0, s*0.3)
	p.Close()
}

// ArrowPath appends the classic pointer arrow on a 24-unit grid with its tip
// at the origin.
func ArrowPath(p *Path) {
	p.MoveTo(0, 0)
	p.LineTo(0, 21)
	p.LineTo(4.5, 16.5)
	p.LineTo(8, 24)
	p.LineTo(11, 23)
	p.LineTo(7.5, 15)
	p.LineTo(14, 15)
	p.Close()
}

// PointerPath appends a pointing hand on a 24-unit grid.
func PointerPath(p *Path) {
	p.MoveTo(8, 2)
	p.QuadTo(4, 2, 4, 7)
	p.LineTo(4, 14)
	p.LineTo(2, 12)
	p.QuadTo(-1, 10, -1, 14)
	p.QuadTo(-1, 17, 2, 20)
	p.LineTo(8, 26)
	p.QuadTo(12, 26, 14, 22)
	p.LineTo(14, 12)
	p.QuadTo(14, 9, 12, 9)
	p.LineTo(12, 7)
	p.QuadTo(12, 2, 8, 2)
	p.Close()
}
