// Package trail is the particle simulation shared by the overlay and the editor
// preview. Each host owns one Engine tuned by its own SimulationConfig.
package trail

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
)

// Engine owns the live particle set and the pointer history for one host.
type Engine struct {
	cfg       config.SimulationConfig
	rng       *rand.Rand
	particles []Particle
	lastX     float64
	lastY     float64
	primed    bool
	trail     settings.TrailType
	hue       Hue
}

// NewEngine creates an engine. A nil rng uses a randomly seeded source.
func NewEngine(cfg config.SimulationConfig, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the tuning the engine was built with.
func (e *Engine) Config() config.SimulationConfig {
	return e.cfg
}

// Particles returns the live set. The slice is reused between ticks.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Hue returns the current rainbow accumulator value in degrees.
func (e *Engine) Hue() float64 {
	return e.hue.Degrees()
}

// Trail returns the trail type the live set was spawned with.
func (e *Engine) Trail() settings.TrailType {
	return e.trail
}

// SetTrail records the active trail type. A change empties the live set so no
// particle of the previous type is drawn afterwards.
func (e *Engine) SetTrail(t settings.TrailType) {
	if t == e.trail {
		return
	}
	e.trail = t
	e.Clear()
}

// Clear removes every particle.
func (e *Engine) Clear() {
	clear(e.particles)
	e.particles = e.particles[:0]
}

// Reset clears particles and forgets the pointer history.
func (e *Engine) Reset() {
	e.Clear()
	e.primed = false
}

// Seed sets the pointer history without spawning, so the first tick after an
// enable does not treat the jump from the origin as movement.
func (e *Engine) Seed(x, y float64) {
	e.lastX, e.lastY = x, y
	e.primed = true
}

// SpawnCount is the number of particles spawned for a displacement, or 0 when
// the displacement does not exceed the movement threshold.
func SpawnCount(cfg config.SimulationConfig, intensity, distance float64) int {
	if !(distance > cfg.MovementThreshold) {
		return 0
	}
	n := int(math.Floor(intensity*cfg.SpawnFactor*(distance/cfg.Normalizer))) + 1
	if n < 1 {
		n = 1
	}
	return min(n, cfg.SpawnCap)
}

// Tick runs one simulation step for the pointer at (x, y) and returns the
// number of particles spawned. s must be the latest settings snapshot.
func (e *Engine) Tick(x, y float64, s settings.Settings) int {
	e.SetTrail(s.Trail)
	if !e.primed {
		e.Seed(x, y)
	}

	spawned := 0
	if s.Trail.Active() {
		distance := math.Hypot(x-e.lastX, y-e.lastY)
		spawned = SpawnCount(e.cfg, s.Intensity, distance)
		if spawned > 0 {
			base := s.FillColor()
			for range spawned {
				e.particles = append(e.particles, e.spawn(x, y, base, s.Trail))
			}
		}
	}

	e.lastX, e.lastY = x, y
	e.age()
	return spawned
}

func (e *Engine) spawn(x, y float64, base color.NRGBA, kind settings.TrailType) Particle {
	c := base
	if kind == settings.TrailRainbow {
		h := e.hue.Advance(e.cfg.HueStep)
		if rc, ok := settings.ParseColor(HSLToHex(h, 100, 50)); ok {
			c = rc
		}
	}

	return Particle{
		X:             x + e.centered(e.cfg.Jitter),
		Y:             y + e.centered(e.cfg.Jitter),
		Size:          e.rng.Float64()*e.cfg.SizeRange + e.cfg.SizeBase,
		Color:         c,
		Kind:          kind,
		Life:          1,
		Decay:         e.cfg.DecayBase + e.rng.Float64()*e.cfg.DecayRange,
		VX:            e.centered(e.cfg.Spread),
		VY:            e.centered(e.cfg.Spread) + e.cfg.Lift,
		Rotation:      e.rng.Float64() * math.Pi * 2,
		RotationSpeed: e.centered(e.cfg.SpinRange),
	}
}

// centered returns a value in [-span/2, span/2).
func (e *Engine) centered(span float64) float64 {
	return (e.rng.Float64() - 0.5) * span
}

// age updates every particle and compacts survivors in place.
func (e *Engine) age() {
	live := e.particles[:0]
	for i := range e.particles {
		p := e.particles[i]
		if p.Update(e.cfg.Gravity) {
			live = append(live, p)
		}
	}
	clear(e.particles[len(live):])
	e.particles = live
}
