package colour

import (
	"errors"
	"image"
	"math"
)

// maxSamples caps how many pixels Dominant looks at.
const maxSamples = 4000

// Dominant returns the average colour of the most populated region of RGB
// space in img. Pixels are grid-sampled and bucketed at 4 bits per channel;
// fully transparent pixels are ignored. Ties go to the lowest bucket so the
// result is deterministic.
func Dominant(img image.Image) (Colour, error) {
	if img == nil {
		return Clear, errors.New("image cannot be nil")
	}

	type bucket struct {
		count   int
		r, g, b float64
	}
	var buckets [4096]bucket

	for _, c := range samplePixels(img) {
		if c.A == 0 {
			continue
		}
		r, g, b, _ := c.RGB255()
		key := int(r>>4)<<8 | int(g>>4)<<4 | int(b>>4)
		bk := &buckets[key]
		bk.count++
		bk.r += c.R
		bk.g += c.G
		bk.b += c.B
	}

	best := -1
	for i := range buckets {
		if buckets[i].count == 0 {
			continue
		}
		if best < 0 || buckets[i].count > buckets[best].count {
			best = i
		}
	}
	if best < 0 {
		return Clear, errors.New("no opaque pixels found in image")
	}

	bk := buckets[best]
	n := float64(bk.count)
	return Colour{R: bk.r / n, G: bk.g / n, B: bk.b / n, A: 1}, nil
}

// samplePixels samples pixels from the image on a regular grid.
func samplePixels(img image.Image) []Colour {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()
	if totalPixels <= 0 {
		return nil
	}

	step := max(int(math.Sqrt(float64(totalPixels)/maxSamples)), 1)

	pixels := make([]Colour, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, FromColor(img.At(x, y)))
		}
	}
	return pixels
}
