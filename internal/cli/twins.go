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

// twinsCommand creates the twins command.
func (c *CLI) twinsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "twins [graph.json]",
		Short: "List eternal-twin pairs",
		Long: `List eternal-twin pairs.

Vertices u and v are eternal twins when, in every snapshot, they have the
same neighbors apart from each other.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTwins(cmd.Context(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print pairs as JSON")
	return cmd
}

func (c *CLI) runTwins(ctx context.Context, input string, asJSON bool) error {
	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}

	pairs := g.FindEternalTwins()
	if asJSON {
		out := make([]pipeline.TwinPair, len(pairs))
		for i, p := range pairs {
			out[i] = pipeline.TwinPair{U: p.U, V: p.V}
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	if len(pairs) == 0 {
		printInfo("No eternal twins")
		return nil
	}
	printSuccess("%d eternal-twin pairs", len(pairs))
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{strconv.Itoa(int(p.U)), strconv.Itoa(int(p.V))}
	}
	fmt.Println(renderTable([]string{"u", "v"}, rows, noHighlight))
	return nil
}
