// Package mesh provides the geometry of a mesh gradient: the unit-square
// control point grid and the motion patterns that displace its interior
// points over time.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGridSize is returned for grids smaller than 2×2.
var ErrInvalidGridSize = errors.New("grid size must be at least 2")

// Point is a control point in the unit square.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// MakePoint returns a point.
func MakePoint(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Dist returns the euclidean distance between two points.
func Dist(p, q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// UnitPoints returns the n×n grid in row-major order with
// point[row*n+col] = (col/(n-1), row/(n-1)).
func UnitPoints(n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, n)
	}

	points := make([]Point, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			points = append(points, Point{
				X: float32(col) / float32(n-1),
				Y: float32(row) / float32(n-1),
			})
		}
	}
	return points, nil
}

// IsBoundary reports whether index lies on the outer row or column of an
// n×n grid. Boundary points never move.
func IsBoundary(index, n int) bool {
	row, col := index/n, index%n
	return row == 0 || row == n-1 || col == 0 || col == n-1
}

// Interior returns the interior indices of an n×n grid in ascending order.
func Interior(n int) []int {
	if n < 3 {
		return nil
	}
	out := make([]int, 0, (n-2)*(n-2))
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			out = append(out, row*n+col)
		}
	}
	return out
}
