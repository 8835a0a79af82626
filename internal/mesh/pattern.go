package mesh

import (
	"fmt"
	"strings"
)

// Pattern selects a motion field.
type Pattern int

const (
	// Wave ripples points outward from the centre.
	Wave Pattern = iota
	// Spiral rotates points with a radius that grows away from the centre.
	Spiral
	// Noise moves each point on its own index-driven Lissajous path.
	Noise
	// Vortex spins points faster the closer they are to the centre.
	Vortex
	// Kaleidoscope runs a different motion in each quadrant.
	Kaleidoscope
	// Drift offsets each point along sin/cos of time plus its index.
	Drift
)

var patternNames = [...]string{
	Wave:         "wave",
	Spiral:       "spiral",
	Noise:        "noise",
	Vortex:       "vortex",
	Kaleidoscope: "kaleidoscope",
	Drift:        "drift",
}

// Patterns returns every pattern in declaration order.
func Patterns() []Pattern {
	return []Pattern{Wave, Spiral, Noise, Vortex, Kaleidoscope, Drift}
}

// Valid reports whether p is one of the declared patterns.
func (p Pattern) Valid() bool {
	return p >= 0 && int(p) < len(patternNames)
}

func (p Pattern) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// ParsePattern converts a case-insensitive name to a Pattern.
func ParsePattern(s string) (Pattern, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pattern: %s (valid: %s)", s, strings.Join(patternNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	v, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
