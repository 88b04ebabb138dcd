// Package cli implements the shplot command-line interface.
//
// The root command reads series data as JSON from stdin or from a
// .json/.toml file argument and writes the rendered plot to stdout (or
// a file via --output). Diagnostics go to stderr via charmbracelet/log;
// the plot itself is the only stdout payload.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shplot/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "shplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The root itself renders a
// plot; the only subcommand is shell completion.
func (c *CLI) RootCommand() *cobra.Command {
	opts := plotOpts{}

	root := &cobra.Command{
		Use:   "shplot [input]",
		Short: "shplot renders numeric series as ASCII plots in the terminal",
		Long: `shplot is a simple plotter for the shell. It reads one or more data
series as JSON (from stdin or a file) or TOML (from a file) and renders
them as a character-grid plot, with ANSI colors when stdout is a
terminal and SI-prefixed axis labels.

Examples:
  echo '{"y": [1, 4, 9, 16, 25]}' | shplot
  shplot measurements.json
  shplot sweep.toml -W 100 -H 30 -o plot.txt`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return c.runPlot(path, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().IntVarP(&opts.width, "width", "W", 0, "plot body width in cells (default: terminal width, capped at 72)")
	root.Flags().IntVarP(&opts.height, "height", "H", 0, "plot body height in cells (default: scaled from width)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "write the plot to a file instead of stdout")

	root.AddCommand(c.completionCommand())

	return root
}
