package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/image"
	"github.com/jmylchreest/meshtint/internal/palette"
	"github.com/jmylchreest/meshtint/internal/seed"
)

type seedOptions struct {
	image   string
	value   int64
	random  bool
	format  string
	preview bool
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	sopts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed [string]",
		Short: "Show the gradient a seed string maps to",
		Long: `Show everything derived from a seed: the grid size (3 to 5), the
curated palette, the working colours and the colour of every cell.

The same seed always produces the same result. With --image the seed is a
hash of the image's pixels, --value uses a seed number directly and
--random picks a fresh seed on every run.

Examples:
  meshtint seed "Mersenne Twister"
  meshtint seed --image wallpaper.jpg --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts, sopts, args)
		},
	}

	cmd.Flags().StringVar(&sopts.image, "image", "", "seed from the content of an image")
	cmd.Flags().Int64Var(&sopts.value, "value", 0, "use a seed number directly")
	cmd.Flags().BoolVar(&sopts.random, "random", false, "use a random seed")
	cmd.Flags().StringVarP(&sopts.format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().BoolVarP(&sopts.preview, "preview", "p", false, "show colour swatches")

	cmd.MarkFlagsMutuallyExclusive("image", "value", "random")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *rootOptions, sopts *seedOptions, args []string) error {
	format, err := opts.resolveFormat(cmd, sopts.format)
	if err != nil {
		return err
	}

	sources := len(args)
	for _, name := range []string{"image", "value", "random"} {
		if cmd.Flags().Changed(name) {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("use only one of a seed string, --image, --value or --random")
	}

	cfg := seed.Config{Mode: seed.ModeString}
	switch {
	case cmd.Flags().Changed("value"):
		cfg = seed.Config{Mode: seed.ModeManual, Value: &sopts.value}
	case sopts.random:
		cfg = seed.Config{Mode: seed.ModeRandom}
	case sopts.image != "":
		img, err := image.NewFileLoader().Load(sopts.image)
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}
		cfg = seed.Config{Mode: seed.ModeContent, Image: img}
	case len(args) == 1:
		cfg.Text = args[0]
	default:
		return errors.New("a seed string, --image, --value or --random is required")
	}

	hash, err := seed.Calculate(cfg)
	if err != nil {
		return err
	}
	seeded := palette.FromHash(hash)
	opts.logger.Debug("derived seed", "mode", cfg.Mode, "hash", hash, "size", seeded.Size, "palette", seeded.Palette.Name)

	output, err := formatSeeded(cfg.Text, seeded, format, opts.showPreview(cmd, sopts.preview))
	if err != nil {
		return err
	}
	return opts.write(cmd, output)
}

func formatSeeded(text string, s palette.Seeded, format string, showPreview bool) (string, error) {
	if format == "json" {
		return marshalJSON(struct {
			Seed         string       `json:"seed,omitempty"`
			Hash         int64        `json:"hash"`
			Size         int          `json:"size"`
			Palette      string       `json:"palette"`
			PaletteIndex int          `json:"palette_index"`
			Working      []colourJSON `json:"working"`
			Colours      []colourJSON `json:"colours"`
		}{
			Seed:         text,
			Hash:         s.Hash,
			Size:         s.Size,
			Palette:      s.Palette.Name,
			PaletteIndex: s.PaletteIndex,
			Working:      toColoursJSON(s.Working),
			Colours:      toColoursJSON(s.Colours),
		})
	}

	grid, err := formatGrid(s.Colours, s.Size, format, showPreview)
	if err != nil {
		return "", err
	}

	working := make([]string, len(s.Working))
	for i, c := range s.Working {
		working[i] = formatColour(c, format, showPreview)
	}

	var sb strings.Builder
	if text != "" {
		fmt.Fprintf(&sb, "seed:    %q\n", text)
	}
	fmt.Fprintf(&sb, "hash:    %d\n", s.Hash)
	fmt.Fprintf(&sb, "size:    %d\n", s.Size)
	fmt.Fprintf(&sb, "palette: %s\n", s.Palette.Name)
	fmt.Fprintf(&sb, "working: %s\n", strings.Join(working, "  "))
	sb.WriteString("\n")
	sb.WriteString(grid)
	return sb.String(), nil
}
