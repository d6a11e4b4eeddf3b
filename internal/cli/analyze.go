package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphderiv/pkg/pipeline"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		opts    pipeline.Options
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [graph.json]",
		Short: "Report twins, window metrics and the Δ-differential tree-width",
		Long: `Report twins, window metrics and the Δ-differential tree-width.

For the window (t, Δ) the maximum degree and tree-width of the differential
are reported; they are omitted when the window does not fit the lifetime.
dtw_Δ is the largest differential tree-width over all windows of length Δ.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveDelta(cmd, &opts.Delta); err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), args[0], opts, asJSON, noCache)
		},
	}

	cmd.Flags().IntVar(&opts.T, "t", pipeline.DefaultT, "window start (0-based snapshot index)")
	cmd.Flags().IntVarP(&opts.Delta, "delta", "d", 0, "window length Δ (default from config, 2)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, input string, opts pipeline.Options, asJSON, noCache bool) error {
	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	opts.Logger = c.Logger
	res, err := runner.Analyze(ctx, g, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %d vertices over %d snapshots", res.NumVertices, res.Lifetime))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printReport(res, opts)
	return nil
}

func printReport(res *pipeline.AnalysisResult, opts pipeline.Options) {
	fmt.Println(StyleTitle.Render("Temporal graph"))
	printKeyValue("vertices", strconv.Itoa(res.NumVertices))
	printKeyValue("lifetime", strconv.Itoa(res.Lifetime))
	printKeyValue("union edges", strconv.Itoa(res.UnionGraphEdgeCount))
	printKeyValue("edges / t", fmt.Sprint(res.EdgeCountsPerSnapshot))
	printKeyValue("eternal twins", strconv.Itoa(res.NumEternalTwins))
	printNewline()

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Window t=%d Δ=%d", opts.T, opts.Delta)))
	if res.WindowError != "" {
		printWarning("%s", res.WindowError)
	}
	printKeyValue("max degree", optInt(res.MaxDegreeDifferential))
	printKeyValue("tree-width", optInt(res.TWCurrentDifferential))
	printNewline()

	fmt.Println(StyleTitle.Render(fmt.Sprintf("dtw_%d", opts.Delta)))
	if res.DeltaError != "" {
		printWarning("%s", res.DeltaError)
		return
	}
	printKeyValue("dtw", optInt(res.DTWDelta))

	highlight := noHighlight
	rows := make([][]string, len(res.DTWPerT))
	for i, w := range res.DTWPerT {
		rows[i] = []string{strconv.Itoa(w[0]), strconv.Itoa(w[1])}
		if res.DTWDelta != nil && w[1] == *res.DTWDelta && highlight == noHighlight {
			highlight = i
		}
	}
	fmt.Println(renderTable([]string{"t", "tw"}, rows, highlight))

	if res.CacheHit {
		printDetail("%s", iconCached)
	}
}
