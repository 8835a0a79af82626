package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/seed"
)

// ErrInvalidSize is returned for grid sizes below 2.
var ErrInvalidSize = errors.New("grid size must be at least 2")

// GridColours builds size*size colours from one base colour. Every cell
// starts as base, interior cells then take a random pick from stops 400-600
// of the tonal palette, and finally the whole slice is shuffled. The shuffle
// runs after assignment, so boundary positions can end up with ramp colours.
// A nil rng uses a randomly seeded generator.
func GridColours(base colour.Colour, size int, rng *rand.Rand) ([]colour.Colour, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if rng == nil {
		rng = seed.NewRand(seed.Random())
	}

	total := size * size
	cells := make([]colour.Colour, total)
	for i := range cells {
		cells[i] = base
	}

	tones := Tonal(base)
	pick := tones[5:8]
	for row := 1; row < size-1; row++ {
		for col := 1; col < size-1; col++ {
			cells[row*size+col] = pick[rng.IntN(len(pick))]
		}
	}

	rng.Shuffle(total, func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells, nil
}

// Fill returns exactly size*size colours from an arbitrary list. A list that
// already has the right length is copied; otherwise every cell takes a random
// element. An empty list gives colour.Clear in every cell.
func Fill(colours []colour.Colour, size int, rng *rand.Rand) []colour.Colour {
	if size < 1 {
		return nil
	}
	total := size * size
	if len(colours) == total {
		return slices.Clone(colours)
	}

	out := make([]colour.Colour, total)
	if len(colours) == 0 {
		for i := range out {
			out[i] = colour.Clear
		}
		return out
	}

	if rng == nil {
		rng = seed.NewRand(seed.Random())
	}
	for i := range out {
		out[i] = colours[rng.IntN(len(colours))]
	}
	return out
}
