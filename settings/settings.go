// Package settings holds the user-facing cursor configuration and the rules for
// merging partial or malformed updates over the documented defaults.
package settings

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// CursorShape names the glyph drawn at the pointer position.
type CursorShape string

const (
	ShapeArrow   CursorShape = "arrow"
	ShapeHeart   CursorShape = "heart"
	ShapeSparkle CursorShape = "sparkle"
	ShapePointer CursorShape = "pointer"
)

// Shapes lists the supported cursor shapes in display order.
var Shapes = []CursorShape{ShapeArrow, ShapeHeart, ShapeSparkle, ShapePointer}

// Known reports whether the shape has its own drawing procedure.
func (s CursorShape) Known() bool {
	switch s {
	case ShapeArrow, ShapeHeart, ShapeSparkle, ShapePointer:
		return true
	}
	return false
}

// TrailType names the particle style spawned behind the pointer.
type TrailType string

const (
	TrailNone     TrailType = ""
	TrailSparkles TrailType = "sparkles"
	TrailHearts   TrailType = "hearts"
	TrailRainbow  TrailType = "rainbow"
)

// Trails lists the selectable trail types in display order.
var Trails = []TrailType{TrailSparkles, TrailHearts, TrailRainbow}

// Active reports whether the trail spawns particles. Unknown names behave as none.
func (t TrailType) Active() bool {
	switch t {
	case TrailSparkles, TrailHearts, TrailRainbow:
		return true
	}
	return false
}

const (
	MinIntensity = 0.0
	MaxIntensity = 10.0
)

// Settings is one consumer's merged view of the configuration.
type Settings struct {
	Enabled    bool
	Color      string // "#rrggbb"
	Shape      CursorShape
	CursorSize float64
	Trail      TrailType
	Intensity  float64
}

// Defaults returns the configuration used for every absent or invalid field.
func Defaults() Settings {
	return Settings{
		Enabled:    true,
		Color:      "#ff69b4",
		Shape:      ShapeArrow,
		CursorSize: 24,
		Trail:      TrailSparkles,
		Intensity:  5,
	}
}

// Patch is a partial update. Nil fields are left unchanged by Merge.
type Patch struct {
	Enabled    *bool
	Color      *string
	Shape      *CursorShape
	CursorSize *float64
	Trail      *TrailType
	Intensity  *float64
}

// Full returns a patch that sets every field from s.
func Full(s Settings) Patch {
	return Patch{
		Enabled:    &s.Enabled,
		Color:      &s.Color,
		Shape:      &s.Shape,
		CursorSize: &s.CursorSize,
		Trail:      &s.Trail,
		Intensity:  &s.Intensity,
	}
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Enabled == nil && p.Color == nil && p.Shape == nil &&
		p.CursorSize == nil && p.Trail == nil && p.Intensity == nil
}

// Merge overlays the present fields of p on base. Values that cannot be used
// are replaced with the default for that field; it never fails.
func Merge(base Settings, p Patch) Settings {
	def := Defaults()
	out := base

	if p.Enabled != nil {
		out.Enabled = *p.Enabled
	}
	if p.Color != nil {
		if c, ok := NormalizeColor(*p.Color); ok {
			out.Color = c
		} else {
			out.Color = def.Color
		}
	}
	if p.Shape != nil {
		out.Shape = CursorShape(strings.ToLower(strings.TrimSpace(string(*p.Shape))))
	}
	if p.CursorSize != nil {
		v := *p.CursorSize
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			v = def.CursorSize
		}
		out.CursorSize = v
	}
	if p.Trail != nil {
		out.Trail = TrailType(strings.ToLower(strings.TrimSpace(string(*p.Trail))))
	}
	if p.Intensity != nil {
		out.Intensity = clampIntensity(*p.Intensity, def.Intensity)
	}
	return out
}

func clampIntensity(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(MinIntensity, math.Min(MaxIntensity, v))
}

// NormalizeColor parses a hex colour and returns it in "#rrggbb" form.
func NormalizeColor(s string) (string, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return c.Clamped().Hex(), true
}

// ParseColor converts a hex colour to an opaque NRGBA.
func ParseColor(s string) (color.NRGBA, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

// FillColor returns the NRGBA for s.Color, falling back to the default colour.
func (s Settings) FillColor() color.NRGBA {
	if c, ok := ParseColor(s.Color); ok {
		return c
	}
	c, _ := ParseColor(Defaults().Color)
	return c
}
