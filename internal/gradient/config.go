// Package gradient binds generated colours and base points into a mesh
// gradient whose displaced points are recomputed on every tick.
//
// A Gradient is immutable once built. The renderer owns the clock and hands
// in a monotonically increasing time; the gradient scales it by Speed and
// asks the mesh package for the frame.
package gradient

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/meshtint/internal/mesh"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid gradient configuration")

// Config holds the tunables of an animated gradient. BlurRadius,
// NoiseOpacity and SecondaryOpacity are not used here; they are carried for
// the compositor that draws the frames.
type Config struct {
	Size             int          `toml:"size" json:"size"`
	Speed            float64      `toml:"speed" json:"speed"`
	Amplitude        float64      `toml:"amplitude" json:"amplitude"`
	BlurRadius       float64      `toml:"blur_radius" json:"blur_radius"`
	NoiseOpacity     float64      `toml:"noise_opacity" json:"noise_opacity"`
	SecondaryOpacity float64      `toml:"secondary_opacity" json:"secondary_opacity"`
	Pattern          mesh.Pattern `toml:"pattern" json:"pattern"`
	Static           bool         `toml:"static" json:"static"`
}

// DefaultConfig returns the default configuration. Every constructor shares
// it, so multi-colour gradients also start with SecondaryOpacity 1.
func DefaultConfig() Config {
	return Config{
		Size:             5,
		Speed:            1.0,
		Amplitude:        0.1,
		BlurRadius:       30,
		NoiseOpacity:     0.4,
		SecondaryOpacity: 1.0,
		Pattern:          mesh.Noise,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size must be at least 2, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Size > 64 {
		return fmt.Errorf("%w: size too large: %d (maximum: 64)", ErrInvalidConfig, c.Size)
	}
	if c.BlurRadius < 0 {
		return fmt.Errorf("%w: blur radius cannot be negative, got %v", ErrInvalidConfig, c.BlurRadius)
	}
	for name, v := range map[string]float64{
		"noise opacity":     c.NoiseOpacity,
		"secondary opacity": c.SecondaryOpacity,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidConfig, name, v)
		}
	}
	if !c.Pattern.Valid() {
		return fmt.Errorf("%w: unknown pattern %d", ErrInvalidConfig, int(c.Pattern))
	}
	return nil
}
