package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL returns hue in degrees [0, 360) and saturation and lightness as
// percentages [0, 100].
func (c Colour) HSL() (h, s, l float64) {
	h, s, l = colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hsl()
	return WrapHue(h), s * 100, l * 100
}

// FromHSL builds a colour from hue in degrees and saturation and lightness
// in percent. Hue is wrapped into [0, 360), the rest are clamped.
func FromHSL(h, s, l, alpha float64) Colour {
	c := colorful.Hsl(WrapHue(h), clamp(s, 0, 100)/100, clamp(l, 0, 100)/100).Clamped()
	return Colour{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}

// WrapHue maps any angle in degrees into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
