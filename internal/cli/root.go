package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphderiv/pkg/buildinfo"
)

// SetVersion overrides the build information displayed by --version.
// Release builds inject these values via ldflags into pkg/buildinfo; this
// is for callers that embed the CLI.
func SetVersion(v, c, d string) {
	buildinfo.Version = v
	buildinfo.Commit = c
	buildinfo.Date = d
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "graphderiv analyzes temporal graphs through their differentials",
		Long: `graphderiv computes the static expansion of a temporal graph over a window
of snapshots (the differential), finds eternal twins, and estimates
tree-width and the Δ-differential tree-width with the min-degree heuristic.

Graphs are JSON documents of the form
  {"vertices": [0, 1, 2], "snapshots": [[[0, 1]], [[1, 2]]]}`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default $GRAPHDERIV_CONFIG)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.differentialCommand())
	root.AddCommand(c.expansionCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.twinsCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
