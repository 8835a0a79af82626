package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/config"
)

const swatchWidth = 8

// colourJSON is the JSON form of a single colour.
type colourJSON struct {
	Hex  string   `json:"hex"`
	RGBA [4]uint8 `json:"rgba"`
}

func toColourJSON(c colour.Colour) colourJSON {
	r, g, b, a := c.RGB255()
	return colourJSON{Hex: c.Hex(), RGBA: [4]uint8{r, g, b, a}}
}

func toColoursJSON(colours []colour.Colour) []colourJSON {
	out := make([]colourJSON, len(colours))
	for i, c := range colours {
		out[i] = toColourJSON(c)
	}
	return out
}

// rgbString formats a colour as a CSS rgb() value, or rgba() when it is not
// fully opaque.
func rgbString(c colour.Colour) string {
	if !c.Opaque() {
		return c.CSS()
	}
	r, g, b, _ := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// formatColour formats one colour for hex or rgb output.
func formatColour(c colour.Colour, format string, showPreview bool) string {
	text := c.Hex()
	if format == "rgb" {
		text = rgbString(c)
	}
	if showPreview {
		return colour.Swatch(c, swatchWidth) + " " + text
	}
	return text
}

// formatColours formats a flat list of colours, one per line.
func formatColours(colours []colour.Colour, format string, showPreview bool) (string, error) {
	switch format {
	case "hex", "rgb":
		var sb strings.Builder
		for _, c := range colours {
			sb.WriteString(formatColour(c, format, showPreview))
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	case "json":
		return marshalJSON(struct {
			Count   int          `json:"count"`
			Colours []colourJSON `json:"colours"`
		}{len(colours), toColoursJSON(colours)})
	default:
		return "", unsupportedFormat(format)
	}
}

// formatGrid formats row-major grid colours, one row per line.
func formatGrid(colours []colour.Colour, size int, format string, showPreview bool) (string, error) {
	switch format {
	case "hex", "rgb":
		var sb strings.Builder
		for row := range size {
			cells := make([]string, 0, size)
			for col := range size {
				c := colours[row*size+col]
				text := c.Hex()
				if format == "rgb" {
					text = rgbString(c)
				}
				if showPreview {
					text = colour.SwatchWithText(c, text, len(text)+2)
				}
				cells = append(cells, text)
			}
			sb.WriteString(strings.Join(cells, " "))
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	case "json":
		return marshalJSON(struct {
			Size    int          `json:"size"`
			Colours []colourJSON `json:"colours"`
		}{size, toColoursJSON(colours)})
	default:
		return "", unsupportedFormat(format)
	}
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(config.ValidFormats(), ", "))
}

// resolveFormat returns the --format flag when given, otherwise the
// configured format.
func (o *rootOptions) resolveFormat(cmd *cobra.Command, flagValue string) (string, error) {
	format := o.cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = strings.ToLower(flagValue)
	}
	if !slices.Contains(config.ValidFormats(), format) {
		return "", unsupportedFormat(format)
	}
	return format, nil
}

// showPreview reports whether swatches should be drawn. --no-color always
// disables them, an explicit --preview flag comes next, and otherwise the
// configured preview only applies when writing to a colour terminal.
func (o *rootOptions) showPreview(cmd *cobra.Command, flagValue bool) bool {
	if o.noColour {
		return false
	}
	if cmd.Flags().Changed("preview") {
		return flagValue
	}
	if !o.cfg.Output.Preview || o.output != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

// write sends output to the --output file or the command's stdout.
func (o *rootOptions) write(cmd *cobra.Command, output string) error {
	if o.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	o.logger.Debug("writing output", "path", o.output)
	if err := os.WriteFile(o.output, []byte(output), 0o644); err != nil { // #nosec G306 -- output files are meant to be readable
		return fmt.Errorf("failed to write output file: %w", err)
	}
	o.logger.Info("wrote output", "path", o.output, "bytes", len(output))
	return nil
}
