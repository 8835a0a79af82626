package palette

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/seed"
)

func TestStopLightnessTable(t *testing.T) {
	all := Stops()
	for i := 1; i < len(all); i++ {
		if StopLightness(all[i]) >= StopLightness(all[i-1]) {
			t.Errorf("stop %d lightness %.0f is not darker than stop %d (%.0f)",
				all[i], StopLightness(all[i]), all[i-1], StopLightness(all[i-1]))
		}
	}
	if got := StopLightness(123); got != 0 {
		t.Errorf("StopLightness(123) = %v, want 0", got)
	}
}

func TestInputLevel(t *testing.T) {
	tests := []struct {
		lightness float64
		want      int
	}{
		{lightness: 100, want: 25},
		{lightness: 44, want: 500},
		{lightness: 50, want: 500},
		{lightness: 0, want: 950},
		{lightness: 96, want: 50},
		{lightness: 13.5, want: 700},
	}
	for _, tt := range tests {
		if got := InputLevel(tt.lightness); got != tt.want {
			t.Errorf("InputLevel(%v) = %d, want %d", tt.lightness, got, tt.want)
		}
	}
}

func TestTonal(t *testing.T) {
	base := colour.FromHSL(200, 50, 44, 1)
	tones := Tonal(base)

	tests := []struct {
		stop    int
		h, s, l float64
	}{
		{stop: 500, h: 200, s: 50, l: 44},
		{stop: 300, h: 238, s: 50 + (38.0/56.0)*50, l: 82},
		{stop: 700, h: 171, s: 50 * (1 - 29.0/44.0), l: 15},
		{stop: 950, h: 160, s: 50 * (1 - 40.0/44.0), l: 4},
	}

	for _, tt := range tests {
		c, ok := tones.At(tt.stop)
		if !ok {
			t.Fatalf("At(%d) missing", tt.stop)
		}
		h, s, l := c.HSL()
		if math.Abs(h-tt.h) > 1e-6 || math.Abs(s-tt.s) > 1e-6 || math.Abs(l-tt.l) > 1e-6 {
			t.Errorf("stop %d = HSL(%.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f)", tt.stop, h, s, l, tt.h, tt.s, tt.l)
		}
	}

	if _, ok := tones.At(550); ok {
		t.Error("At(550) should not exist")
	}
}

func TestTonalHueWraps(t *testing.T) {
	base := colour.FromHSL(350, 60, 44, 1)
	c, _ := Tonal(base).At(25)
	h, _, _ := c.HSL()
	if math.Abs(h-45) > 1e-6 {
		t.Errorf("stop 25 hue = %.4f, want 45", h)
	}
}

func TestTonalLightnessMonotonic(t *testing.T) {
	bases := []colour.Colour{
		colour.HexOrFallback("3B2D25"),
		colour.HexOrFallback("A9BCF5"),
		colour.White,
		colour.Black,
		colour.FromHSL(120, 100, 50, 1),
		colour.FromHSL(300, 10, 90, 0.5),
	}

	for _, base := range bases {
		tones := Tonal(base)
		for i, c := range tones {
			_, s, l := c.HSL()
			want := StopLightness(Stops()[i])
			if math.Abs(l-want) > 1e-6 {
				t.Errorf("base %s stop %d lightness = %.4f, want %.0f", base.Hex(), Stops()[i], l, want)
			}
			if s < 0 || s > 100 {
				t.Errorf("base %s stop %d saturation %.4f out of range", base.Hex(), Stops()[i], s)
			}
			if c.A != base.A {
				t.Errorf("base %s stop %d alpha = %v, want %v", base.Hex(), Stops()[i], c.A, base.A)
			}
			if i > 0 {
				_, _, prev := tones[i-1].HSL()
				if l > prev {
					t.Errorf("base %s stop %d lighter than previous stop", base.Hex(), Stops()[i])
				}
			}
		}
	}
}

func TestGridColours(t *testing.T) {
	base := colour.HexOrFallback("5AC8FA")
	tones := Tonal(base)
	pick := tones[5:8]

	for n := 2; n <= 8; n++ {
		cells, err := GridColours(base, n, seed.NewRand(int64(n)))
		if err != nil {
			t.Fatalf("GridColours(n=%d) error = %v", n, err)
		}
		if len(cells) != n*n {
			t.Fatalf("GridColours(n=%d) len = %d, want %d", n, len(cells), n*n)
		}

		changed := 0
		for _, c := range cells {
			if c == base {
				continue
			}
			changed++
			if !slices.Contains(pick, c) {
				t.Errorf("GridColours(n=%d) produced %s outside stops 400-600", n, c.Hex())
			}
		}
		if interior := (n - 2) * (n - 2); changed > interior {
			t.Errorf("GridColours(n=%d) changed %d cells, only %d are interior", n, changed, interior)
		}
	}
}

func TestGridColoursDeterministicWithRand(t *testing.T) {
	base := colour.HexOrFallback("705449")
	a, _ := GridColours(base, 6, seed.NewRand(99))
	b, _ := GridColours(base, 6, seed.NewRand(99))
	if !slices.Equal(a, b) {
		t.Error("GridColours() differs for the same generator seed")
	}
}

func TestGridColoursInvalidSize(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := GridColours(colour.White, n, nil); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("GridColours(n=%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
}

func TestFill(t *testing.T) {
	red := colour.FromRGBA8(255, 0, 0, 255)
	blue := colour.FromRGBA8(0, 0, 255, 255)

	t.Run("exact length is copied", func(t *testing.T) {
		in := []colour.Colour{red, blue, blue, red}
		out := Fill(in, 2, nil)
		if !slices.Equal(in, out) {
			t.Errorf("Fill() = %v, want %v", out, in)
		}
		out[0] = blue
		if in[0] != red {
			t.Error("Fill() aliased its input")
		}
	})

	t.Run("short list is sampled", func(t *testing.T) {
		out := Fill([]colour.Colour{red, blue}, 3, seed.NewRand(1))
		if len(out) != 9 {
			t.Fatalf("len = %d, want 9", len(out))
		}
		for _, c := range out {
			if c != red && c != blue {
				t.Errorf("Fill() produced %s", c.Hex())
			}
		}
	})

	t.Run("empty list falls back to clear", func(t *testing.T) {
		out := Fill(nil, 4, nil)
		if len(out) != 16 {
			t.Fatalf("len = %d, want 16", len(out))
		}
		for _, c := range out {
			if c != colour.Clear {
				t.Errorf("Fill(nil) produced %s, want clear", c.Hex())
			}
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		if out := Fill([]colour.Colour{red}, 0, nil); out != nil {
			t.Errorf("Fill(size=0) = %v, want nil", out)
		}
	})
}

func TestSeededDeterministic(t *testing.T) {
	a := SeededColours("Mersenne Twiste")
	b := SeededColours("Mersenne Twiste")
	if !slices.Equal(a, b) {
		t.Fatal("SeededColours() differs between calls")
	}

	s := FromSeed("Mersenne Twiste")
	if len(a) != s.Size*s.Size {
		t.Errorf("len = %d, want %d", len(a), s.Size*s.Size)
	}
	if s.Hash != seed.FromString("Mersenne Twiste") {
		t.Errorf("Hash = %d, want seed.FromString()", s.Hash)
	}
}

func TestSeededGolden(t *testing.T) {
	s := FromSeed("Mersenne Twiste")

	if s.Hash != -8478485924570040690 {
		t.Errorf("Hash = %d, want -8478485924570040690", s.Hash)
	}
	if s.Size != 3 {
		t.Errorf("Size = %d, want 3", s.Size)
	}
	if s.PaletteIndex != 0 || s.Palette.Name != "neon" {
		t.Errorf("palette = %d (%s), want 0 (neon)", s.PaletteIndex, s.Palette.Name)
	}

	wantWorking := []string{"#32ade6", "#32ade6", "#007aff"}
	wantCells := []string{
		"#32ade6", "#32ade6", "#32ade6",
		"#32ade6", "#32ade6", "#32ade6",
		"#32ade6", "#007aff", "#32ade6",
	}
	if got := hexes(s.Working); !slices.Equal(got, wantWorking) {
		t.Errorf("Working = %v, want %v", got, wantWorking)
	}
	if got := hexes(s.Colours); !slices.Equal(got, wantCells) {
		t.Errorf("Colours = %v, want %v", got, wantCells)
	}
}

func hexes(colours []colour.Colour) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out
}

func TestSeededShape(t *testing.T) {
	sizes := map[int]bool{}
	for i := 0; i < 300; i++ {
		s := FromHash(int64(i) * 7919)
		if s.Size < MinSeededSize || s.Size > MaxSeededSize {
			t.Fatalf("size %d out of range", s.Size)
		}
		sizes[s.Size] = true

		if s.PaletteIndex < 0 || s.PaletteIndex >= len(CuratedPalettes()) {
			t.Fatalf("palette index %d out of range", s.PaletteIndex)
		}
		if len(s.Working) != WorkingColours {
			t.Fatalf("working colours = %d, want %d", len(s.Working), WorkingColours)
		}
		for _, w := range s.Working {
			if !slices.Contains(s.Palette.Colours[:], w) {
				t.Fatalf("working colour %s not in palette %s", w.Hex(), s.Palette.Name)
			}
		}
		for _, c := range s.Colours {
			if !slices.Contains(s.Working, c) {
				t.Fatalf("cell colour %s not a working colour", c.Hex())
			}
		}
	}
	for n := MinSeededSize; n <= MaxSeededSize; n++ {
		if !sizes[n] {
			t.Errorf("size %d never produced", n)
		}
	}
}

func TestCuratedPalettes(t *testing.T) {
	all := CuratedPalettes()
	if len(all) != 14 {
		t.Fatalf("len = %d, want 14", len(all))
	}
	seen := map[string]bool{}
	for _, p := range all {
		if seen[p.Name] {
			t.Errorf("duplicate palette name %s", p.Name)
		}
		seen[p.Name] = true
	}

	all[0].Colours[0] = colour.Clear
	if CuratedPalettes()[0].Colours[0] == colour.Clear {
		t.Error("CuratedPalettes() exposed the shared table")
	}
}

func TestNamed(t *testing.T) {
	coffee, err := Named(DarkRoastCoffee)
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	if len(coffee) != 4 || coffee[0].Hex() != "#3b2d25" {
		t.Errorf("Named(%s) = %v", DarkRoastCoffee, coffee)
	}

	sky, err := Named(Skyfall)
	if err != nil || len(sky) != 5 || sky[4].Hex() != "#34499b" {
		t.Errorf("Named(%s) = %v, %v", Skyfall, sky, err)
	}

	lava, err := Named("lava")
	if err != nil || len(lava) != 5 {
		t.Errorf("Named(lava) = %v, %v", lava, err)
	}

	if _, err := Named("mauve"); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("Named(mauve) error = %v, want ErrUnknownPalette", err)
	}

	names := NamedPalettes()
	if len(names) != 16 || !slices.IsSorted(names) {
		t.Errorf("NamedPalettes() = %v", names)
	}
}
