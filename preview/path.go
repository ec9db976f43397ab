// Package preview animates the demo pointer shown in the editor's preview pane.
package preview

import (
	"github.com/automoto/sparkle-cursor/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Path moves a pointer along a figure-8 inside a w×h pane. Each axis is a sine
// wave built from three eased tweens; the pointer follows the target with a
// fixed lerp factor every step.
type Path struct {
	w, h   float64
	cfg    config.EditorConfig
	seqX   *gween.Sequence
	seqY   *gween.Sequence
	x, y   float64
	tx, ty float64
}

// NewPath starts the pointer and the target at the pane centre.
func NewPath(w, h float64, cfg config.EditorConfig) *Path {
	return &Path{
		w:    w,
		h:    h,
		cfg:  cfg,
		seqX: sineSequence(float32(cfg.PreviewPeriodX)),
		seqY: sineSequence(float32(cfg.PreviewPeriodY)),
		x:    w / 2,
		y:    h / 2,
		tx:   w / 2,
		ty:   h / 2,
	}
}

// sineSequence is one period of sin(t) scaled to [-1, 1].
func sineSequence(period float32) *gween.Sequence {
	q := period / 4
	return gween.NewSequence(
		gween.New(0, 1, q, ease.OutSine),
		gween.New(1, -1, 2*q, ease.InOutSine),
		gween.New(-1, 0, q, ease.InSine),
	)
}

func advance(seq *gween.Sequence, dt float32) float64 {
	v, _, done := seq.Update(dt)
	if done {
		seq.Reset()
	}
	return float64(v)
}

// Step advances the animation by dt seconds and returns the pointer position.
func (p *Path) Step(dt float64) (x, y float64) {
	sx := advance(p.seqX, float32(dt))
	sy := advance(p.seqY, float32(dt))
	p.tx = p.w/2 + sx*p.w*p.cfg.PreviewAmplitudeX
	p.ty = p.h/2 + sy*p.h*p.cfg.PreviewAmplitudeY

	p.x += (p.tx - p.x) * p.cfg.PreviewFollow
	p.y += (p.ty - p.y) * p.cfg.PreviewFollow
	return p.x, p.y
}

// Position returns the current pointer position.
func (p *Path) Position() (x, y float64) {
	return p.x, p.y
}

// Target returns the point on the figure-8 the pointer is moving toward.
func (p *Path) Target() (x, y float64) {
	return p.tx, p.ty
}
