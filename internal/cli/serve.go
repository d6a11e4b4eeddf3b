package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphderiv/internal/config"
	"github.com/matzehuels/graphderiv/internal/server"
	"github.com/matzehuels/graphderiv/pkg/observability"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		staticDir string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Endpoints:
  POST /api/init-random       generate a random temporal graph
  POST /api/differential      expand one window into Cytoscape elements
  POST /api/static-expansion  expand the whole timeline
  POST /api/analyze           twins, window metrics and dtw_Δ
  GET  /health                liveness probe

Flags override the [server] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.Config()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if staticDir != "" {
				cfg.Server.StaticDir = staticDir
			}
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :5000)")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory of static files to serve at /")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config, noCache bool) error {
	c.cfg = &cfg
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetAnalysisHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	printInfo("Serving on %s", StyleHighlight.Render(cfg.Server.Addr))
	if cfg.Server.StaticDir != "" {
		printDetail("Static files: %s", cfg.Server.StaticDir)
	}
	return server.New(cfg, runner, c.Logger).Run(ctx)
}
