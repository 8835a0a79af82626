package gradient

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/mesh"
	"github.com/jmylchreest/meshtint/internal/palette"
)

// Gradient is a cached colour grid and base point grid.
type Gradient struct {
	cfg     Config
	colours []colour.Colour
	base    []mesh.Point
}

// NewSingle builds a gradient from one base colour using palette.GridColours.
// A nil rng picks colours non-deterministically.
func NewSingle(base colour.Colour, cfg Config, rng *rand.Rand) (*Gradient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colours, err := palette.GridColours(base, cfg.Size, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate grid colours: %w", err)
	}
	return build(cfg, colours)
}

// NewMulti builds a gradient from a list of colours. Lists that do not hold
// exactly Size² colours are resampled with palette.Fill.
func NewMulti(colours []colour.Colour, cfg Config, rng *rand.Rand) (*Gradient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return build(cfg, palette.Fill(colours, cfg.Size, rng))
}

// NewSeeded builds a gradient from a seed string. The seed decides the grid
// size, so cfg.Size is replaced.
func NewSeeded(s string, cfg Config) (*Gradient, error) {
	seeded := palette.FromSeed(s)
	cfg.Size = seeded.Size
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return build(cfg, seeded.Colours)
}

func build(cfg Config, colours []colour.Colour) (*Gradient, error) {
	points, err := mesh.UnitPoints(cfg.Size)
	if err != nil {
		return nil, err
	}
	if len(colours) != len(points) {
		return nil, fmt.Errorf("have %d colours for %d points", len(colours), len(points))
	}
	return &Gradient{cfg: cfg, colours: colours, base: points}, nil
}

// Config returns the configuration the gradient was built with.
func (g *Gradient) Config() Config { return g.cfg }

// Size returns the grid dimension N.
func (g *Gradient) Size() int { return g.cfg.Size }

// Colours returns a copy of the N² cell colours.
func (g *Gradient) Colours() []colour.Colour { return slices.Clone(g.colours) }

// BasePoints returns a copy of the undisplaced grid.
func (g *Gradient) BasePoints() []mesh.Point { return slices.Clone(g.base) }

// Time maps a caller clock value to animation time.
func (g *Gradient) Time(t float64) float64 {
	if g.cfg.Static {
		return 0
	}
	return t * g.cfg.Speed
}

// Frame returns the displaced points for clock value t.
func (g *Gradient) Frame(t float64) []mesh.Point {
	return mesh.Frame(g.base, g.cfg.Size, g.Time(t), g.cfg.Pattern, g.cfg.Amplitude)
}

// FrameAt returns the frame for an elapsed duration, measured in seconds.
func (g *Gradient) FrameAt(elapsed time.Duration) []mesh.Point {
	return g.Frame(elapsed.Seconds())
}

// Frames computes count frames at clock values start, start+step, ...
// Each frame's rows are spread over at most workers goroutines.
func (g *Gradient) Frames(ctx context.Context, start, step float64, count, workers int) ([][]mesh.Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("frame count cannot be negative, got %d", count)
	}

	frames := make([][]mesh.Point, 0, count)
	for i := 0; i < count; i++ {
		t := g.Time(start + float64(i)*step)
		frame, err := mesh.FrameConcurrent(ctx, g.base, g.cfg.Size, t, g.cfg.Pattern, g.cfg.Amplitude, workers)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
