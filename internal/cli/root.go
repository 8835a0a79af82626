// Package cli provides the command-line interface for meshtint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/meshtint/internal/config"
	"github.com/jmylchreest/meshtint/internal/version"
)

// rootOptions is the state shared by every subcommand of one command tree.
type rootOptions struct {
	verbose    bool
	quiet      bool
	noColour   bool
	configPath string
	output     string

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "meshtint",
		Short: "Colour palettes and motion for animated mesh gradients",
		Long: `meshtint generates the inputs of an animated mesh gradient: a grid of
control points, a colour for every point, and the displaced positions of the
interior points at any moment in time.

Colours come from a single base colour (a 12-stop tonal palette), a named
palette, or a seed string that deterministically picks the grid size, a
curated palette and every cell colour. Points move under one of several
motion patterns; the outer ring of the grid never moves.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&opts.noColour, "no-color", false, "never draw colour swatches, even with --preview")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/meshtint/config.toml)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPaletteCmd(opts))
	rootCmd.AddCommand(newGridCmd(opts))
	rootCmd.AddCommand(newSeedCmd(opts))
	rootCmd.AddCommand(newPointsCmd(opts))
	rootCmd.AddCommand(newAnimateCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load configures logging and reads the configuration. Explicit --config
// files must exist; the default location is only read when present.
func (o *rootOptions) load(cmd *cobra.Command) error {
	o.logger = newLogger(cmd.ErrOrStderr(), o.verbose, o.quiet)

	builder := config.NewBuilder().WithEnvConfig()
	if o.configPath != "" {
		builder = builder.WithFile(o.configPath)
	} else {
		builder = builder.WithDefaultFile()
	}

	cfg, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	o.cfg = cfg

	if cfg.Source != "" {
		o.logger.Debug("loaded configuration", "path", cfg.Source)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
