package trail

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLToHex converts hue (degrees), saturation and lightness (percent) to "#rrggbb".
func HSLToHex(h, s, l float64) string {
	return colorful.Hsl(wrapHue(h), s/100, l/100).Clamped().Hex()
}

// wrapHue maps any hue into [0, 360).
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Hue is the rainbow accumulator. It advances by a fixed step per spawned
// particle and always stays in [0, 360).
type Hue struct {
	deg float64
}

// Advance steps the accumulator and returns the new hue.
func (h *Hue) Advance(step float64) float64 {
	h.deg = wrapHue(h.deg + step)
	return h.deg
}

// Degrees returns the current hue.
func (h *Hue) Degrees() float64 {
	return h.deg
}
