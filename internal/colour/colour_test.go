package colour

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		r, g, b, a uint8
	}{
		{name: "six digits", input: "3B2D25", r: 59, g: 45, b: 37, a: 255},
		{name: "six digits with hash", input: "#a9bcf5", r: 169, g: 188, b: 245, a: 255},
		{name: "three digits", input: "#abc", r: 170, g: 187, b: 204, a: 255},
		{name: "eight digits alpha first", input: "80ff0000", r: 255, g: 0, b: 0, a: 128},
		{name: "surrounding punctuation", input: " #34499B; ", r: 52, g: 73, b: 155, a: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.input, err)
			}
			r, g, b, a := c.RGB255()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("ParseHex(%q) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.input, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestParseHexNormalised(t *testing.T) {
	c, err := ParseHex("3B2D25")
	if err != nil {
		t.Fatalf("ParseHex() error = %v", err)
	}
	want := [4]float64{0.231, 0.176, 0.145, 1.0}
	got := [4]float64{c.R, c.G, c.B, c.A}
	for i := range want {
		if !approx(got[i], want[i], 0.001) {
			t.Errorf("channel %d = %.4f, want %.3f", i, got[i], want[i])
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, input := range []string{"", "12", "12345", "1234567", "zzz", "12345g", "#123456789", "#-12-34-56-"} {
		t.Run(input, func(t *testing.T) {
			c, err := ParseHex(input)
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", input, err)
			}
			if c != Fallback {
				t.Errorf("ParseHex(%q) = %+v, want Fallback", input, c)
			}
			if HexOrFallback(input) != Fallback {
				t.Errorf("HexOrFallback(%q) did not return Fallback", input)
			}
		})
	}
}

func TestFallbackIsNearTransparent(t *testing.T) {
	r, g, b, a := Fallback.RGB255()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Errorf("Fallback = (%d,%d,%d,%d), want (1,1,1,1)", r, g, b, a)
	}
}

func TestHexRoundTrip(t *testing.T) {
	colours := []Colour{
		{R: 0.231, G: 0.176, B: 0.145, A: 1},
		{R: 0, G: 0, B: 0, A: 1},
		{R: 1, G: 1, B: 1, A: 1},
		{R: 0.5, G: 0.25, B: 0.75, A: 0.5},
		{R: 0.1, G: 0.9, B: 0.3, A: 0},
	}

	for _, c := range colours {
		hex := c.Hex()
		if c.Opaque() && len(hex) != 7 {
			t.Errorf("Hex() = %q, want 6 digits for opaque colour", hex)
		}
		if !c.Opaque() && len(hex) != 9 {
			t.Errorf("Hex() = %q, want 8 digits for translucent colour", hex)
		}

		got, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", hex, err)
		}
		for i, pair := range [][2]float64{{got.R, c.R}, {got.G, c.G}, {got.B, c.B}, {got.A, c.A}} {
			if !approx(pair[0], pair[1], 1.0/255) {
				t.Errorf("round trip of %q channel %d = %.4f, want %.4f", hex, i, pair[0], pair[1])
			}
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		c       Colour
		h, s, l float64
	}{
		{name: "red", c: Colour{R: 1, A: 1}, h: 0, s: 100, l: 50},
		{name: "green", c: Colour{G: 1, A: 1}, h: 120, s: 100, l: 50},
		{name: "blue", c: Colour{B: 1, A: 1}, h: 240, s: 100, l: 50},
		{name: "grey", c: Colour{R: 0.5, G: 0.5, B: 0.5, A: 1}, h: 0, s: 0, l: 50},
		{name: "white", c: White, h: 0, s: 0, l: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.c.HSL()
			if !approx(h, tt.h, 1e-9) || !approx(s, tt.s, 1e-9) || !approx(l, tt.l, 1e-9) {
				t.Errorf("HSL() = (%.3f, %.3f, %.3f), want (%.0f, %.0f, %.0f)", h, s, l, tt.h, tt.s, tt.l)
			}

			back := FromHSL(h, s, l, tt.c.A)
			if back.Hex() != tt.c.Hex() {
				t.Errorf("FromHSL(HSL()) = %s, want %s", back.Hex(), tt.c.Hex())
			}
		})
	}
}

func TestFromHSLWrapsAndClamps(t *testing.T) {
	a := FromHSL(-30, 80, 40, 1)
	b := FromHSL(330, 80, 40, 1)
	if a.Hex() != b.Hex() {
		t.Errorf("FromHSL(-30) = %s, want %s", a.Hex(), b.Hex())
	}

	over := FromHSL(10, 150, 120, 2)
	if over != White {
		t.Errorf("FromHSL with out of range values = %+v, want white", over)
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-1, 359},
		{725, 5},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := WrapHue(tt.in); !approx(got, tt.want, 1e-9) {
			t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if !approx(c.R, 1, 1e-3) || c.G != 0 || !approx(c.A, 128.0/255, 1e-3) {
		t.Errorf("FromColor(NRGBA) = %+v", c)
	}

	if got := FromColor(color.RGBA{}); got != Clear {
		t.Errorf("FromColor(transparent) = %+v, want Clear", got)
	}

	r, g, b, a := (Colour{R: 1, A: 1}).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
}

func TestLuminance(t *testing.T) {
	if l := White.Luminance(); !approx(l, 1, 1e-9) {
		t.Errorf("White.Luminance() = %v, want 1", l)
	}
	if l := Black.Luminance(); l != 0 {
		t.Errorf("Black.Luminance() = %v, want 0", l)
	}
}

func TestDominant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			px := color.NRGBA{R: 255, A: 255}
			if y >= 7 {
				px = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, px)
		}
	}

	got, err := Dominant(img)
	if err != nil {
		t.Fatalf("Dominant() error = %v", err)
	}
	if got.Hex() != "#ff0000" {
		t.Errorf("Dominant() = %s, want #ff0000", got.Hex())
	}
}

func TestDominantErrors(t *testing.T) {
	if _, err := Dominant(nil); err == nil {
		t.Error("Dominant(nil) expected error")
	}
	if _, err := Dominant(image.NewNRGBA(image.Rect(0, 0, 4, 4))); err == nil {
		t.Error("Dominant(transparent) expected error")
	}
}

func TestSwatch(t *testing.T) {
	red := Colour{R: 1, A: 1}

	s := Swatch(red, 4)
	if !strings.HasPrefix(s, "\033[48;2;255;0;0m    ") || !strings.HasSuffix(s, ansiReset) {
		t.Errorf("Swatch() = %q", s)
	}

	light := SwatchWithText(White, "ab", 6)
	if !strings.Contains(light, "\033[38;2;0;0;0m  ab  ") {
		t.Errorf("SwatchWithText(white) = %q, want dark centred text", light)
	}

	dark := SwatchWithText(Black, "abcdefgh", 4)
	if !strings.Contains(dark, "\033[38;2;255;255;255mabcd") {
		t.Errorf("SwatchWithText(black) = %q, want light truncated text", dark)
	}

	if got := FormatWithPreview(red, 2); !strings.HasSuffix(got, " #ff0000") {
		t.Errorf("FormatWithPreview() = %q", got)
	}
}
