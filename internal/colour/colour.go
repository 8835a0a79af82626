// Package colour provides the colour value type used throughout meshtint,
// together with hex, HSL and terminal preview helpers.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// Colour is a straight (non-premultiplied) RGBA colour with every channel in
// the range [0, 1].
type Colour struct {
	R float64
	G float64
	B float64
	A float64
}

var (
	// Clear is fully transparent black. Used when a cell has no colour to take.
	Clear = Colour{}

	// Fallback is returned by ParseHex for malformed input: (a, r, g, b) = (1, 1, 1, 1) / 255.
	Fallback = Colour{R: 1.0 / 255, G: 1.0 / 255, B: 1.0 / 255, A: 1.0 / 255}

	// White and Black are opaque convenience values.
	White = Colour{R: 1, G: 1, B: 1, A: 1}
	Black = Colour{A: 1}
)

// New returns a colour with each channel clamped into [0, 1].
func New(r, g, b, a float64) Colour {
	return Colour{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// FromRGBA8 builds a colour from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Colour {
	return Colour{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts any color.Color. The alpha premultiplication of the
// standard library is undone so the result holds straight RGB values.
func FromColor(c color.Color) Colour {
	if cc, ok := c.(Colour); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Clear
	}
	af := float64(a)
	return Colour{
		R: float64(r) / af,
		G: float64(g) / af,
		B: float64(b) / af,
		A: af / 0xffff,
	}
}

// RGBA implements color.Color. Values are alpha-premultiplied as the
// interface requires.
func (c Colour) RGBA() (r, g, b, a uint32) {
	c = New(c.R, c.G, c.B, c.A)
	a = uint32(math.Round(c.A * 0xffff))
	r = uint32(math.Round(c.R * c.A * 0xffff))
	g = uint32(math.Round(c.G * c.A * 0xffff))
	b = uint32(math.Round(c.B * c.A * 0xffff))
	return r, g, b, a
}

// RGB255 returns the colour as rounded 8-bit channels.
func (c Colour) RGB255() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// NRGBA returns the 8-bit non-premultiplied standard library form.
func (c Colour) NRGBA() color.NRGBA {
	r, g, b, a := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Opaque reports whether the 8-bit alpha is 255.
func (c Colour) Opaque() bool {
	return to8(c.A) == 255
}

// String returns the colour as a hex string.
func (c Colour) String() string {
	return c.Hex()
}

// CSS returns the colour in CSS rgba() notation.
func (c Colour) CSS() string {
	r, g, b, _ := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, clamp01(c.A))
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (c Colour) Luminance() float64 {
	return 0.2126*gammaCorrect(clamp01(c.R)) +
		0.7152*gammaCorrect(clamp01(c.G)) +
		0.0722*gammaCorrect(clamp01(c.B))
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
