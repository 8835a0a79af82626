package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/colour"
	"github.com/jmylchreest/meshtint/internal/mesh"
	"github.com/jmylchreest/meshtint/internal/palette"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:       "list {patterns|palettes}",
		Short:     "List motion patterns or named palettes",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"patterns", "palettes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var sb strings.Builder
			switch args[0] {
			case "patterns":
				for _, p := range mesh.Patterns() {
					fmt.Fprintln(&sb, p)
				}
			case "palettes":
				showPreview := opts.showPreview(cmd, preview)
				for _, name := range palette.NamedPalettes() {
					colours, err := palette.Named(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(&sb, "%-18s", name)
					for _, c := range colours {
						if showPreview {
							sb.WriteString(colour.Swatch(c, 3))
						} else {
							sb.WriteString(" " + c.Hex())
						}
					}
					sb.WriteByte('\n')
				}
			}
			return opts.write(cmd, sb.String())
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show colour swatches")

	return cmd
}
