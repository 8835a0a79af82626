package palette

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jmylchreest/meshtint/internal/colour"
)

// ErrUnknownPalette is returned by Named for names not in any table.
var ErrUnknownPalette = errors.New("unknown palette")

// Curated is one of the fixed five-colour palettes seeded gradients draw from.
type Curated struct {
	Name    string
	Colours [5]colour.Colour
}

// System colours.
var (
	black  = colour.FromRGBA8(0, 0, 0, 255)
	red    = colour.FromRGBA8(255, 59, 48, 255)
	orange = colour.FromRGBA8(255, 149, 0, 255)
	yellow = colour.FromRGBA8(255, 204, 0, 255)
	green  = colour.FromRGBA8(52, 199, 89, 255)
	mint   = colour.FromRGBA8(0, 199, 190, 255)
	teal   = colour.FromRGBA8(48, 176, 199, 255)
	cyan   = colour.FromRGBA8(50, 173, 230, 255)
	blue   = colour.FromRGBA8(0, 122, 255, 255)
	indigo = colour.FromRGBA8(88, 86, 214, 255)
	purple = colour.FromRGBA8(175, 82, 222, 255)
	pink   = colour.FromRGBA8(255, 45, 85, 255)
)

// Accent colours.
var (
	deepNavy   = colour.FromRGBA8(36, 29, 108, 255)
	softCyan   = colour.FromRGBA8(129, 236, 236, 255)
	peach      = colour.FromRGBA8(255, 176, 97, 255)
	deepBlue   = colour.FromRGBA8(19, 84, 122, 255)
	aquaMint   = colour.FromRGBA8(103, 230, 220, 255)
	neonPink   = colour.FromRGBA8(255, 102, 204, 255)
	rubyRed    = colour.FromRGBA8(194, 53, 79, 255)
	goldenSand = colour.FromRGBA8(255, 216, 102, 255)
	turquoise  = colour.FromRGBA8(48, 213, 200, 255)
	violet     = colour.FromRGBA8(159, 90, 253, 255)
	coral      = colour.FromRGBA8(255, 127, 80, 255)
)

// The order of this table is part of the seeded output.
var curated = [...]Curated{
	{"neon", [5]colour.Colour{cyan, blue, purple, pink, red}},
	{"neon-glow", [5]colour.Colour{teal, mint, purple, indigo, cyan}},
	{"sunrise", [5]colour.Colour{orange, pink, purple, blue, indigo}},
	{"sunset", [5]colour.Colour{yellow, orange, red, purple, blue}},
	{"deep-space", [5]colour.Colour{black, indigo, purple, blue, cyan}},
	{"nebula", [5]colour.Colour{deepNavy, blue, purple, violet, pink}},
	{"tropical-ocean", [5]colour.Colour{cyan, turquoise, mint, blue, deepBlue}},
	{"lagoon", [5]colour.Colour{aquaMint, teal, green, turquoise, softCyan}},
	{"fire", [5]colour.Colour{red, orange, yellow, peach, goldenSand}},
	{"lava", [5]colour.Colour{coral, peach, red, rubyRed, deepNavy}},
	{"forest", [5]colour.Colour{green, mint, teal, blue, deepBlue}},
	{"meadow", [5]colour.Colour{yellow, green, turquoise, teal, mint}},
	{"cyberpunk", [5]colour.Colour{neonPink, purple, blue, cyan, turquoise}},
	{"synthwave", [5]colour.Colour{pink, violet, deepNavy, blue, teal}},
}

// Named palettes.
const (
	DarkRoastCoffee = "dark-roast-coffee"
	Skyfall         = "skyfall"
)

var named = map[string][]string{
	DarkRoastCoffee: {"3B2D25", "4C3A31", "5E473D", "705449"},
	Skyfall:         {"A9BCF5", "89A5E1", "6D86CA", "5167B3", "34499B"},
}

// CuratedPalettes returns a copy of the curated palette table.
func CuratedPalettes() []Curated {
	return slices.Clone(curated[:])
}

// NamedPalettes returns the names of every palette Named accepts, sorted.
func NamedPalettes() []string {
	names := make([]string, 0, len(named)+len(curated))
	for name := range named {
		names = append(names, name)
	}
	for _, c := range curated {
		names = append(names, c.Name)
	}
	slices.Sort(names)
	return names
}

// Named returns the colours of a named or curated palette.
func Named(name string) ([]colour.Colour, error) {
	if hexes, ok := named[name]; ok {
		out := make([]colour.Colour, len(hexes))
		for i, h := range hexes {
			c, err := colour.ParseHex(h)
			if err != nil {
				return nil, fmt.Errorf("palette %s: %w", name, err)
			}
			out[i] = c
		}
		return out, nil
	}
	for _, c := range curated {
		if c.Name == name {
			return slices.Clone(c.Colours[:]), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
}
