package palette

import (
	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/seed"
)

// Seeded grid sizes fall in [MinSeededSize, MaxSeededSize].
const (
	MinSeededSize = 3
	MaxSeededSize = 5

	// WorkingColours is how many palette colours a seeded grid is painted with.
	WorkingColours = 3
)

// Seeded is everything derived from one seed string.
type Seeded struct {
	Hash         int64
	Size         int
	PaletteIndex int
	Palette      Curated
	Working      []colour.Colour
	Colours      []colour.Colour
}

// FromSeed derives size, palette and per-cell colours from a seed string.
// Size and palette each come from the first draw of a generator seeded with
// the string's hash; working colour i uses hash+i and cell k uses hash+k.
func FromSeed(s string) Seeded {
	return FromHash(seed.FromString(s))
}

// FromHash is FromSeed for an already hashed seed.
func FromHash(hash int64) Seeded {
	size := MinSeededSize + seed.NewRand(hash).IntN(MaxSeededSize-MinSeededSize+1)
	idx := seed.NewRand(hash).IntN(len(curated))
	p := curated[idx]

	working := make([]colour.Colour, WorkingColours)
	for i := range working {
		working[i] = pickSeeded(p.Colours[:], hash+int64(i))
	}

	cells := make([]colour.Colour, size*size)
	for k := range cells {
		cells[k] = pickSeeded(working, hash+int64(k))
	}

	return Seeded{
		Hash:         hash,
		Size:         size,
		PaletteIndex: idx,
		Palette:      p,
		Working:      working,
		Colours:      cells,
	}
}

// SeededSize returns the grid size a seed string maps to.
func SeededSize(s string) int {
	return FromSeed(s).Size
}

// SeededColours returns the per-cell colours a seed string maps to.
func SeededColours(s string) []colour.Colour {
	return FromSeed(s).Colours
}

func pickSeeded(from []colour.Colour, s int64) colour.Colour {
	if len(from) == 0 {
		return colour.Clear
	}
	return from[seed.NewRand(s).IntN(len(from))]
}
