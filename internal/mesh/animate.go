package mesh

import (
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
)

var center = Point{X: 0.5, Y: 0.5}

// Animate displaces one point at time t. It is pure: the same arguments
// always give the same point, and nothing outside the call is touched.
// Callers apply it to interior indices only; see Frame. An unknown pattern
// returns p unchanged. gridSize is accepted for patterns that scale with
// grid density; none of the current ones do.
func Animate(p Point, index int, t float64, pattern Pattern, amplitude float64, gridSize int) Point {
	x := float64(p.X)
	y := float64(p.Y)
	d := Dist(p, center)

	var dx, dy float64
	switch pattern {
	case Wave:
		const frequency = 5.0
		dx = amplitude * math.Sin(t+d*frequency)
		dy = amplitude * math.Cos(t+d*frequency)

	case Spiral:
		angle := t + d*4
		dx = math.Cos(angle) * d * amplitude
		dy = math.Sin(angle) * d * amplitude

	case Noise:
		dx = amplitude * math.Sin(1.5*t+0.5*float64(index))
		dy = amplitude * math.Cos(2.0*t+0.7*float64(index))

	case Vortex:
		angle := math.Atan2(y-0.5, x-0.5)
		speed := (1 - d) * 2
		dx = amplitude * math.Cos(speed*t+angle)
		dy = amplitude * math.Sin(speed*t+angle)

	case Kaleidoscope:
		dx, dy = kaleidoscope(x, y, d, t, amplitude)

	case Drift:
		dx = amplitude * math.Sin(t+float64(index))
		dy = amplitude * math.Cos(t+float64(index))

	default:
		return p
	}

	return p.Add(Point{X: float32(dx), Y: float32(dy)})
}

// kaleidoscope picks a motion by quadrant q = 2·(x>0.5) + (y>0.5).
func kaleidoscope(x, y, d, t, amplitude float64) (dx, dy float64) {
	q := 0
	if x > 0.5 {
		q += 2
	}
	if y > 0.5 {
		q++
	}

	switch q {
	case 0: // scaled spiral
		scale := 0.3 + 0.1*math.Sin(t)
		angle := 2*t + 6*d
		return math.Cos(angle) * d * amplitude * scale, math.Sin(angle) * d * amplitude * scale
	case 1: // wave
		return amplitude * math.Sin(t+4*y), 0.5 * amplitude * math.Cos(t+4*x)
	case 2: // radial pulse
		pulse := amplitude * math.Sin(2*t+8*d)
		return (x - 0.5) * pulse, (y - 0.5) * pulse
	default: // rotating circles
		speed := (1 - d) * 3
		r := d * amplitude
		angle := speed*t + math.Atan2(y-0.5, x-0.5)
		return r * math.Cos(angle), r * math.Sin(angle)
	}
}

// Frame returns the displaced grid at time t. Interior points are animated,
// boundary points are copied, and base is never modified. A base that is not
// an n×n grid is returned as an unmoved copy.
func Frame(base []Point, n int, t float64, pattern Pattern, amplitude float64) []Point {
	if n < 2 || len(base) != n*n {
		return slices.Clone(base)
	}
	out := make([]Point, len(base))
	for i, p := range base {
		out[i] = framePoint(p, i, n, t, pattern, amplitude)
	}
	return out
}

// FrameConcurrent computes the same result as Frame with rows spread over at
// most workers goroutines. workers < 1 means one goroutine per row.
func FrameConcurrent(ctx context.Context, base []Point, n int, t float64, pattern Pattern, amplitude float64, workers int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, n)
	}
	if len(base) != n*n {
		return nil, fmt.Errorf("base has %d points, want %d for a %d×%d grid", len(base), n*n, n, n)
	}

	out := make([]Point, len(base))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for row := 0; row < n; row++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := row * n; i < (row+1)*n; i++ {
				out[i] = framePoint(base[i], i, n, t, pattern, amplitude)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func framePoint(p Point, i, n int, t float64, pattern Pattern, amplitude float64) Point {
	if IsBoundary(i, n) {
		return p
	}
	return Animate(p, i, t, pattern, amplitude, n)
}
