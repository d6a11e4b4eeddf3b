package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gio "github.com/matzehuels/graphderiv/pkg/io"
	"github.com/matzehuels/graphderiv/pkg/pipeline"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// stdinPath selects standard input as the graph source.
const stdinPath = "-"

// loadGraph reads a temporal graph document from path, or from stdin when
// path is "-".
func loadGraph(ctx context.Context, path string) (*temporal.Graph, error) {
	logger := loggerFromContext(ctx)

	var (
		g   *temporal.Graph
		err error
	)
	if path == stdinPath {
		g, err = gio.ReadGraph(os.Stdin)
	} else {
		g, err = gio.ReadGraphFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	logger.Debugf("Loaded graph: %d vertices, %d snapshots", g.VertexCount(), g.Lifetime())
	return g, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input and appends suffix.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input, suffix string) string {
	if output == "" {
		if input == stdinPath {
			input = "graph"
		}
		return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes one file per format. A single format with an
// explicit output path is written to that path verbatim.
func writeArtifacts(artifacts map[string][]byte, formats []string, base, output string) ([]string, error) {
	var written []string
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
