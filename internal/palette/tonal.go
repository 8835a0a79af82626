// Package palette generates the colour arrays that feed a mesh gradient:
// tonal ramps derived from one base colour, curated and named palettes, and
// per-cell colour grids filled either randomly or from a seed string.
package palette

import (
	"math"

	"github.com/jmylchreest/meshtint/internal/colour"
)

// TonalSize is the number of stops in a tonal palette.
const TonalSize = 12

// midStop is the stop that anchors saturation and hue shifts.
const midStop = 500

var stops = [TonalSize]int{25, 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

var stopLightness = map[int]float64{
	25:  99,
	50:  97,
	100: 95,
	200: 90,
	300: 82,
	400: 64,
	500: 44,
	600: 28,
	700: 15,
	800: 12,
	900: 8,
	950: 4,
}

// Tones is a tonal palette, lightest stop first.
type Tones [TonalSize]colour.Colour

// At returns the colour for a stop such as 500.
func (t Tones) At(stop int) (colour.Colour, bool) {
	for i, s := range stops {
		if s == stop {
			return t[i], true
		}
	}
	return colour.Clear, false
}

// Stops returns the tonal stops, lightest first.
func Stops() [TonalSize]int {
	return stops
}

// StopLightness returns the target HSL lightness (percent) of a stop, or 0
// for a stop that is not in the table.
func StopLightness(stop int) float64 {
	return stopLightness[stop]
}

// InputLevel returns the stop whose lightness is closest to lightness.
// The lighter stop wins a tie.
func InputLevel(lightness float64) int {
	closest := stops[0]
	minDiff := math.Abs(lightness - StopLightness(stops[0]))

	for _, stop := range stops[1:] {
		if diff := math.Abs(lightness - StopLightness(stop)); diff < minDiff {
			minDiff = diff
			closest = stop
		}
	}
	return closest
}

// Tonal derives a 12-stop ramp from base. Stops lighter than 500 push
// saturation towards 100%, darker stops pull it towards 0%, each in
// proportion to how far the stop sits from 500 on its side. Hue rotates by
// the lightness distance between the stop and the base colour's own level.
func Tonal(base colour.Colour) Tones {
	h, s, l := base.HSL()

	inputLightness := StopLightness(InputLevel(l))
	midLightness := StopLightness(midStop)

	var tones Tones
	for i, stop := range stops {
		target := StopLightness(stop)

		var sat float64
		if target >= midLightness {
			diff := (target - midLightness) / (100 - midLightness)
			sat = s + diff*(100-s)
		} else {
			diff := (midLightness - target) / midLightness
			sat = s * (1 - diff)
		}
		sat = math.Max(0, math.Min(100, sat))

		hue := colour.WrapHue(h + target - inputLightness)
		tones[i] = colour.FromHSL(hue, sat, target, base.A)
	}
	return tones
}
