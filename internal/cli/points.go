package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/mesh"
)

type pointsOptions struct {
	size   int
	format string
}

func newPointsCmd(opts *rootOptions) *cobra.Command {
	popts := &pointsOptions{}

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the base control points of an N×N grid",
		Long: `Print the evenly spaced control points of an N×N grid in the unit square,
in row-major order. Boundary points are marked; they never move.

Examples:
  meshtint points --size 3
  meshtint points --size 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(cmd, opts, popts)
		},
	}

	cmd.Flags().IntVarP(&popts.size, "size", "n", 5, "grid size N")
	cmd.Flags().StringVarP(&popts.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runPoints(cmd *cobra.Command, opts *rootOptions, popts *pointsOptions) error {
	size := opts.cfg.Gradient.Size
	if cmd.Flags().Changed("size") {
		size = popts.size
	}

	points, err := mesh.UnitPoints(size)
	if err != nil {
		return err
	}

	var output string
	switch strings.ToLower(popts.format) {
	case "text":
		output = formatPoints(points, size)
	case "json":
		type pointJSON struct {
			mesh.Point
			Boundary bool `json:"boundary"`
		}
		out := make([]pointJSON, len(points))
		for i, p := range points {
			out[i] = pointJSON{Point: p, Boundary: mesh.IsBoundary(i, size)}
		}
		output, err = marshalJSON(struct {
			Size   int         `json:"size"`
			Points []pointJSON `json:"points"`
		}{size, out})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", popts.format)
	}

	return opts.write(cmd, output)
}

// formatPoints prints one "index x y" line per point, with boundary points
// flagged.
func formatPoints(points []mesh.Point, size int) string {
	var sb strings.Builder
	for i, p := range points {
		fmt.Fprintf(&sb, "%3d  %.4f  %.4f", i, p.X, p.Y)
		if mesh.IsBoundary(i, size) {
			sb.WriteString("  boundary")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
