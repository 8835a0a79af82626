package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the command logger. Verbose logs at debug level, quiet
// only reports errors, and the default keeps warnings.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "meshtint",
		Output: out,
		Level:  level,
	})
}
