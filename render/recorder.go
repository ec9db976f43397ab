package render

import "image/color"

// Call is one Surface operation captured by a Recorder.
type Call struct {
	Op     string // "clear", "fill" or "stroke"
	Ops    int    // Path command count
	Matrix Matrix
	Color  color.NRGBA
	Width  float64
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: "clear"})
}

func (r *Recorder) Fill(p *Path, m Matrix, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: "fill", Ops: p.Len(), Matrix: m, Color: c})
}

func (r *Recorder) Stroke(p *Path, m Matrix, c color.NRGBA, width float64) {
	r.Calls = append(r.Calls, Call{Op: "stroke", Ops: p.Len(), Matrix: m, Color: c, Width: width})
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
