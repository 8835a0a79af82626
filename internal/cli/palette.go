package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/image"
	"github.com/jmylchreest/meshtint/internal/palette"
)

type paletteOptions struct {
	image   string
	named   string
	format  string
	preview bool
}

func newPaletteCmd(opts *rootOptions) *cobra.Command {
	popts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette [hex]",
		Short: "Generate a 12-stop tonal palette",
		Long: `Generate a 12-stop tonal palette (25 through 950) from a base colour.

The base colour is given as a hex code (#RGB, #RRGGBB or #AARRGGBB), or is
taken as the dominant colour of an image. With --named the colours of a
named or curated palette are printed instead.

Examples:
  meshtint palette "#3b82f6"
  meshtint palette --image wallpaper.jpg --format json
  meshtint palette --named skyfall`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, opts, popts, args)
		},
	}

	cmd.Flags().StringVar(&popts.image, "image", "", "use the dominant colour of an image as the base")
	cmd.Flags().StringVar(&popts.named, "named", "", "print a named palette (see 'meshtint list palettes')")
	cmd.Flags().StringVarP(&popts.format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().BoolVarP(&popts.preview, "preview", "p", false, "show colour swatches")
	cmd.MarkFlagsMutuallyExclusive("image", "named")

	return cmd
}

func runPalette(cmd *cobra.Command, opts *rootOptions, popts *paletteOptions, args []string) error {
	format, err := opts.resolveFormat(cmd, popts.format)
	if err != nil {
		return err
	}
	showPreview := opts.showPreview(cmd, popts.preview)

	if popts.named != "" {
		if len(args) > 0 {
			return errors.New("a base colour cannot be combined with --named")
		}
		colours, err := palette.Named(strings.ToLower(popts.named))
		if err != nil {
			return err
		}
		opts.logger.Debug("using named palette", "name", popts.named, "colours", len(colours))
		output, err := formatColours(colours, format, showPreview)
		if err != nil {
			return err
		}
		return opts.write(cmd, output)
	}

	base, err := resolveBase(opts, args, popts.image)
	if err != nil {
		return err
	}

	tones := palette.Tonal(base)
	opts.logger.Debug("generated tonal palette", "base", base.Hex(), "stop", palette.InputLevel(lightnessOf(base)))

	output, err := formatTones(base, tones, format, showPreview)
	if err != nil {
		return err
	}
	return opts.write(cmd, output)
}

// resolveBase returns the base colour from the positional hex argument or
// the dominant colour of an image. Exactly one must be given.
func resolveBase(opts *rootOptions, args []string, imagePath string) (colour.Colour, error) {
	switch {
	case imagePath != "" && len(args) > 0:
		return colour.Clear, errors.New("a base colour cannot be combined with --image")
	case imagePath != "":
		opts.logger.Debug("loading image", "path", imagePath)
		img, err := image.NewFileLoader().Load(imagePath)
		if err != nil {
			return colour.Clear, fmt.Errorf("failed to load image: %w", err)
		}
		bounds := img.Bounds()
		opts.logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())
		base, err := colour.Dominant(img)
		if err != nil {
			return colour.Clear, fmt.Errorf("failed to find dominant colour: %w", err)
		}
		opts.logger.Debug("dominant colour", "colour", base.Hex())
		return base, nil
	case len(args) == 1:
		base, err := colour.ParseHex(args[0])
		if err != nil {
			return colour.Clear, fmt.Errorf("invalid base colour: %w", err)
		}
		return base, nil
	default:
		return colour.Clear, errors.New("a base colour or --image is required")
	}
}

func lightnessOf(c colour.Colour) float64 {
	_, _, l := c.HSL()
	return l
}

type toneJSON struct {
	Stop      int     `json:"stop"`
	Lightness float64 `json:"lightness"`
	colourJSON
}

// formatTones prints one "stop colour" line per tone, or the whole palette
// as JSON.
func formatTones(base colour.Colour, tones palette.Tones, format string, showPreview bool) (string, error) {
	stops := palette.Stops()

	switch format {
	case "hex", "rgb":
		var sb strings.Builder
		for i, c := range tones {
			fmt.Fprintf(&sb, "%-4d %s\n", stops[i], formatColour(c, format, showPreview))
		}
		return sb.String(), nil
	case "json":
		out := struct {
			Base  colourJSON `json:"base"`
			Stop  int        `json:"stop"`
			Tones []toneJSON `json:"tones"`
		}{
			Base:  toColourJSON(base),
			Stop:  palette.InputLevel(lightnessOf(base)),
			Tones: make([]toneJSON, len(tones)),
		}
		for i, c := range tones {
			out.Tones[i] = toneJSON{
				Stop:       stops[i],
				Lightness:  palette.StopLightness(stops[i]),
				colourJSON: toColourJSON(c),
			}
		}
		return marshalJSON(out)
	default:
		return "", unsupportedFormat(format)
	}
}
