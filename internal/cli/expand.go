package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphderiv/pkg/expansion"
	"github.com/matzehuels/graphderiv/pkg/pipeline"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// expandOpts holds the flags shared by the differential and expansion commands.
type expandOpts struct {
	window     pipeline.Options
	static     bool
	formatsStr string
	output     string
	detailed   bool
	scale      float64
	noCache    bool
}

// differentialCommand creates the differential command for one window.
func (c *CLI) differentialCommand() *cobra.Command {
	var opts expandOpts

	cmd := &cobra.Command{
		Use:   "differential [graph.json]",
		Short: "Expand one window (t, Δ) of a temporal graph",
		Long: `Expand one window (t, Δ) of a temporal graph.

The differential contains one copy of every vertex per snapshot t..t+Δ-1.
Black edges are the snapshot edges; red edges join consecutive copies of
the same vertex. The command reports the node and edge counts, the maximum
degree and the min-degree tree-width estimate of the result.

With --format the expansion is also rendered (json, dot, svg, png, pdf).
Use "-" to read the graph from stdin.`,
		Example: `  graphderiv differential graph.json --t 1 --delta 3
  graphderiv differential graph.json -f svg,json -o out/window`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveDelta(cmd, &opts.window.Delta); err != nil {
				return err
			}
			return c.runExpand(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.window.T, "t", pipeline.DefaultT, "window start (0-based snapshot index)")
	cmd.Flags().IntVarP(&opts.window.Delta, "delta", "d", 0, "window length Δ (default from config, 2)")
	cmd.Flags().BoolVar(&opts.window.Refresh, "refresh", false, "recompute even if cached")
	addRenderFlags(cmd, &opts)

	return cmd
}

// expansionCommand creates the expansion command for the whole timeline.
func (c *CLI) expansionCommand() *cobra.Command {
	opts := expandOpts{static: true}

	cmd := &cobra.Command{
		Use:   "expansion [graph.json]",
		Short: "Expand the whole timeline of a temporal graph",
		Long: `Expand the whole timeline of a temporal graph.

This is the differential with t = 0 and Δ = lifetime.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExpand(cmd.Context(), args[0], opts)
		},
	}
	addRenderFlags(cmd, &opts)
	return cmd
}

func addRenderFlags(cmd *cobra.Command, opts *expandOpts) {
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "render format(s): json, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include the time step in node labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2.0, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
}

// resolveDelta fills Δ from the config when --delta was not given and
// rejects an explicit value below 1.
func (c *CLI) resolveDelta(cmd *cobra.Command, delta *int) error {
	if cmd.Flags().Changed("delta") {
		if *delta < 1 {
			return fmt.Errorf("%w: --delta must be >= 1, got %d", temporal.ErrInvalidDelta, *delta)
		}
		return nil
	}
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	*delta = cfg.Analysis.DefaultDelta
	return nil
}

func (c *CLI) runExpand(ctx context.Context, input string, opts expandOpts) error {
	var formats []string
	if opts.formatsStr != "" {
		formats = parseFormats(opts.formatsStr)
		if err := pipeline.ValidateFormats(formats); err != nil {
			return err
		}
	}

	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Expanding...")
	spinner.Start()

	var res *pipeline.ExpansionResult
	if opts.static {
		res, err = runner.StaticExpansion(ctx, g)
	} else {
		opts.window.Logger = c.Logger
		res, err = runner.Differential(ctx, g, opts.window)
	}
	if err != nil {
		spinner.StopWithError("Expansion failed")
		return err
	}
	spinner.Stop()

	label := "Differential"
	if opts.static {
		label = "Static expansion"
	}
	printSuccess("%s t=%s Δ=%s", label,
		StyleNumber.Render(strconv.Itoa(res.Window.T)),
		StyleNumber.Render(strconv.Itoa(res.Window.Delta)))
	printStats(res.Elements.Stats.NumNodes, res.Elements.Stats.NumBlackEdges, res.Elements.Stats.NumRedEdges, res.CacheHit)
	printKeyValue("max degree", strconv.Itoa(res.MaxDegree))
	printKeyValue("tree-width", strconv.Itoa(res.TreeWidth))

	if len(formats) == 0 {
		return nil
	}

	var exp *expansion.Expansion
	if opts.static {
		exp, err = expansion.Static(g)
	} else {
		exp, err = expansion.Build(g, res.Window.T, res.Window.Delta)
	}
	if err != nil {
		return err
	}

	artifacts, err := pipeline.Render(ctx, exp, pipeline.RenderOptions{
		Formats:  formats,
		Detailed: opts.detailed,
		Scale:    opts.scale,
	})
	if err != nil {
		return err
	}

	suffix := fmt.Sprintf("_t%d_d%d", res.Window.T, res.Window.Delta)
	if opts.static {
		suffix = "_expansion"
	}
	written, err := writeArtifacts(artifacts, formats, basePath(opts.output, input, suffix), opts.output)
	for _, path := range written {
		printFile(path)
	}
	return err
}
