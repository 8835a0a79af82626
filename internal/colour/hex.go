package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is wrapped by every ParseHex failure.
var ErrInvalidHex = errors.New("invalid hex colour")

// ParseHex parses a hex colour string. Leading and trailing non-alphanumeric
// characters (such as "#") are ignored. Supported forms:
//
//	RGB       12-bit, each nibble repeated
//	RRGGBB    24-bit, opaque
//	AARRGGBB  32-bit, alpha first
//
// On failure the Fallback colour is returned alongside an error wrapping
// ErrInvalidHex, so callers that only want a colour can ignore the error.
func ParseHex(s string) (Colour, error) {
	digits := strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, r := range digits {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return Fallback, fmt.Errorf("%w: %q: non-hex digit %q", ErrInvalidHex, s, r)
		}
	}

	switch len(digits) {
	case 3, 6:
		c, err := colorful.Hex("#" + digits)
		if err != nil {
			return Fallback, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
		}
		return Colour{R: c.R, G: c.G, B: c.B, A: 1}, nil
	case 8:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return Fallback, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
		}
		return FromRGBA8(uint8(v>>16), uint8(v>>8), uint8(v), uint8(v>>24)), nil
	default:
		return Fallback, fmt.Errorf("%w: %q: expected 3, 6 or 8 digits, got %d", ErrInvalidHex, s, len(digits))
	}
}

// HexOrFallback parses s and silently returns Fallback when it is malformed.
func HexOrFallback(s string) Colour {
	c, _ := ParseHex(s)
	return c
}

// Hex returns "#rrggbb" for opaque colours and "#aarrggbb" otherwise, the
// same digit order ParseHex reads.
func (c Colour) Hex() string {
	r, g, b, a := c.RGB255()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", a, r, g, b)
}
