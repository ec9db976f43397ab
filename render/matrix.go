package render

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2-D affine transform in x/image row-major layout:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Matrix f64.Aff3

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0}
}

// Translation returns a pure translation.
func Translation(x, y float64) Matrix {
	return Matrix{1, 0, x, 0, 1, y}
}

// Mul returns m·n, the transform that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Translate, Rotate and Scale append a local transform, so subsequent geometry
// is expressed in the moved frame (canvas semantics).
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Translation(x, y))
}

func (m Matrix) Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return m.Mul(Matrix{cos, -sin, 0, sin, cos, 0})
}

func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{sx, 0, 0, 0, sy, 0})
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// ScaleFactor is the uniform scale the transform applies to lengths.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m[0]*m[4] - m[1]*m[3]))
}
