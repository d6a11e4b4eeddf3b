package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/graphderiv/pkg/io"
	"github.com/matzehuels/graphderiv/pkg/pipeline"
)

// generateCommand creates the generate command for random temporal graphs.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		seed   int64
	)
	opts := pipeline.GenerateOptions{
		Vertices:  pipeline.DefaultVertices,
		Snapshots: pipeline.DefaultSnapshots,
		EdgeProb:  pipeline.DefaultEdgeProb,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random temporal graph",
		Long: `Generate a random temporal graph.

Every unordered pair of vertices is an edge of each snapshot independently
with probability --edge-prob. The graph is written as JSON to --output, or
to stdout when no output is given.`,
		Example: `  graphderiv generate -n 8 -s 4 -p 0.3 --seed 7 -o graph.json
  graphderiv generate | graphderiv analyze -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			} else if cfg, err := c.Config(); err != nil {
				return err
			} else {
				opts.Seed = cfg.Generate.Seed
			}
			return c.runGenerate(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().IntVarP(&opts.Vertices, "vertices", "n", opts.Vertices, "number of vertices")
	cmd.Flags().IntVarP(&opts.Snapshots, "snapshots", "s", opts.Snapshots, "number of snapshots (lifetime)")
	cmd.Flags().Float64VarP(&opts.EdgeProb, "edge-prob", "p", opts.EdgeProb, "per-pair edge probability in [0, 1]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.GenerateOptions, output string) error {
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	g, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}

	if output == "" {
		return gio.WriteGraph(g, os.Stdout)
	}
	if err := gio.WriteGraphFile(g, output); err != nil {
		return err
	}

	printSuccess("Generated %d vertices over %d snapshots", g.VertexCount(), g.Lifetime())
	printFile(output)
	printNextStep("Analyze it", "graphderiv analyze "+output)
	return nil
}
