package render

import "image/color"

// Surface is what a host provides to paint on. Paths are given in local
// coordinates together with the transform that maps them to the surface.
// Stroke width is expressed in local units.
type Surface interface {
	Clear()
	Fill(p *Path, m Matrix, c color.NRGBA)
	Stroke(p *Path, m Matrix, c color.NRGBA, width float64)
}
