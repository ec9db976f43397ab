package trail

import (
	"image/color"

	"github.com/automoto/sparkle-cursor/settings"
)

// Particle is one trail fragment. Life counts down from 1; the particle is
// retired on the tick it reaches zero.
type Particle struct {
	X, Y          float64
	Size          float64 // Base size; drawn size is Size * Life
	Color         color.NRGBA
	Kind          settings.TrailType
	Life          float64
	Decay         float64
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64
}

// Update advances the particle one tick and reports whether it is still alive.
func (p *Particle) Update(gravity float64) bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Life -= p.Decay
	p.Rotation += p.RotationSpeed
	return p.Life > 0
}
