// Package driver runs the trail simulation and renderer on a host's display
// refresh, and owns the stopped/running/suspended lifecycle around them.
package driver

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/render"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/trail"
)

// ErrNoSurface is returned by Enable when the host cannot provide a drawing
// surface yet. The driver stays stopped; a later Enable tries again.
var ErrNoSurface = errors.New("drawing surface unavailable")

// State is the driver lifecycle state.
type State int

const (
	Stopped State = iota
	Running
	Suspended
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// SurfaceProvider hands out the host drawing surface.
type SurfaceProvider interface {
	Acquire() (render.Surface, error)
	Release(render.Surface)
}

// PointerSource delivers pointer movement. The returned func unsubscribes.
type PointerSource interface {
	Subscribe(func(x, y float64)) (unsubscribe func())
}

// CursorSuppressor hides the native cursor while the custom one is drawn.
type CursorSuppressor interface {
	Enable()
	Disable()
}

// Options configure a Driver. Surfaces, Pointer and Scheduler are required.
type Options struct {
	Config    config.SimulationConfig
	Rand      *rand.Rand
	Settings  settings.Settings
	Surfaces  SurfaceProvider
	Pointer   PointerSource
	Cursor    CursorSuppressor // Optional
	Scheduler *FrameScheduler
	Style     render.CursorStyle
	SizeScale float64 // Cursor size multiplier; 0 means 1
}

// Driver is one host's animation loop. It is not safe for concurrent use;
// pointer callbacks and settings updates must arrive on the host's update
// goroutine, between frames.
type Driver struct {
	opts     Options
	engine   *trail.Engine
	settings settings.Settings

	state       State
	hidden      bool
	frame       FrameID
	surface     render.Surface
	unsubscribe func()

	x, y       float64
	hasPointer bool
}

// New creates a stopped driver.
func New(opts Options) *Driver {
	return &Driver{
		opts:     opts,
		engine:   trail.NewEngine(opts.Config, opts.Rand),
		settings: opts.Settings,
	}
}

func (d *Driver) State() State                { return d.state }
func (d *Driver) Settings() settings.Settings { return d.settings }
func (d *Driver) Engine() *trail.Engine       { return d.engine }

// Pointer returns the latest known pointer position.
func (d *Driver) Pointer() (x, y float64, ok bool) {
	return d.x, d.y, d.hasPointer
}

// Enable starts the loop. Calling it while running or suspended does nothing.
func (d *Driver) Enable() error {
	d.settings.Enabled = true
	if d.state != Stopped {
		return nil
	}

	surface, err := d.opts.Surfaces.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSurface, err)
	}
	if surface == nil {
		return ErrNoSurface
	}
	d.surface = surface

	d.unsubscribe = d.opts.Pointer.Subscribe(d.move)
	if d.opts.Cursor != nil {
		d.opts.Cursor.Enable()
	}

	if d.hidden {
		d.state = Suspended
		return nil
	}
	d.state = Running
	d.schedule()
	return nil
}

// Disable stops the loop, empties the particle set, clears and releases the
// surface and drops the pointer subscription.
func (d *Driver) Disable() {
	d.settings.Enabled = false
	if d.state == Stopped {
		return
	}
	d.cancel()
	d.engine.Reset()

	d.surface.Clear()
	d.opts.Surfaces.Release(d.surface)
	d.surface = nil

	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.hasPointer = false
	if d.opts.Cursor != nil {
		d.opts.Cursor.Disable()
	}
	d.state = Stopped
}

// SetHidden suspends the loop while the host surface is not visible and
// resumes it afterwards. Particles are kept across a suspension.
func (d *Driver) SetHidden(hidden bool) {
	d.hidden = hidden
	switch {
	case hidden && d.state == Running:
		d.cancel()
		d.state = Suspended
	case !hidden && d.state == Suspended:
		d.state = Running
		d.schedule()
	}
}

// Update merges a settings update without touching the lifecycle. A changed
// trail empties the particle set at once.
func (d *Driver) Update(p settings.Patch) {
	d.settings = settings.Merge(d.settings, p)
	d.engine.SetTrail(d.settings.Trail)
}

// Apply merges a settings update and then starts or stops the loop to match
// the enabled flag.
func (d *Driver) Apply(p settings.Patch) error {
	d.Update(p)
	if d.settings.Enabled {
		return d.Enable()
	}
	d.Disable()
	return nil
}

// Replace swaps every setting at once.
func (d *Driver) Replace(s settings.Settings) error {
	return d.Apply(settings.Full(s))
}

func (d *Driver) move(x, y float64) {
	d.x, d.y = x, y
	d.hasPointer = true
}

func (d *Driver) schedule() {
	if d.frame != 0 {
		return
	}
	d.frame = d.opts.Scheduler.Request(d.tick)
}

func (d *Driver) cancel() {
	if d.frame != 0 {
		d.opts.Scheduler.Cancel(d.frame)
		d.frame = 0
	}
}

func (d *Driver) tick() {
	d.frame = 0
	if d.state != Running {
		return
	}
	s := d.settings

	if !d.hasPointer {
		d.surface.Clear()
		d.schedule()
		return
	}

	d.engine.Tick(d.x, d.y, s)
	render.DrawFrame(d.surface, render.Frame{
		Particles: d.engine.Particles(),
		X:         d.x,
		Y:         d.y,
		Settings:  s,
		SizeScale: d.opts.SizeScale,
		Style:     d.opts.Style,
	})
	d.schedule()
}
