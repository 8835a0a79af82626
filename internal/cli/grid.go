package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/palette"
	"github.com/jmylchreest/meshtint/internal/seed"
)

type gridOptions struct {
	size    int
	seed    string
	image   string
	format  string
	preview bool
}

func newGridCmd(opts *rootOptions) *cobra.Command {
	gopts := &gridOptions{}

	cmd := &cobra.Command{
		Use:   "grid [hex]",
		Short: "Generate grid colours from a base colour",
		Long: `Generate the N×N colours of a single-colour mesh gradient.

Every cell starts as the base colour; interior cells are then replaced with
mid-range tones (400 to 600) of the base and the grid is shuffled. Without
--seed the result differs on every run.

Examples:
  meshtint grid "#ff6b6b" --size 4
  meshtint grid "#ff6b6b" --seed sunrise --format json
  meshtint grid --image wallpaper.jpg --preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, opts, gopts, args)
		},
	}

	cmd.Flags().IntVarP(&gopts.size, "size", "n", 5, "grid size N")
	cmd.Flags().StringVarP(&gopts.seed, "seed", "s", "", "seed string for a reproducible grid")
	cmd.Flags().StringVar(&gopts.image, "image", "", "use the dominant colour of an image as the base")
	cmd.Flags().StringVarP(&gopts.format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().BoolVarP(&gopts.preview, "preview", "p", false, "show colour swatches")

	return cmd
}

func runGrid(cmd *cobra.Command, opts *rootOptions, gopts *gridOptions, args []string) error {
	format, err := opts.resolveFormat(cmd, gopts.format)
	if err != nil {
		return err
	}

	size := opts.cfg.Gradient.Size
	if cmd.Flags().Changed("size") {
		size = gopts.size
	}

	base, err := resolveBase(opts, args, gopts.image)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if gopts.seed != "" {
		hash := seed.FromString(gopts.seed)
		opts.logger.Debug("seeding grid", "seed", gopts.seed, "hash", hash)
		rng = seed.NewRand(hash)
	}

	colours, err := palette.GridColours(base, size, rng)
	if err != nil {
		return fmt.Errorf("failed to generate grid: %w", err)
	}
	opts.logger.Debug("generated grid", "base", base.Hex(), "size", size)

	output, err := formatGrid(colours, size, format, opts.showPreview(cmd, gopts.preview))
	if err != nil {
		return err
	}
	return opts.write(cmd, output)
}
