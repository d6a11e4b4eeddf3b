package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/graphderiv/pkg/expansion"
	gio "github.com/matzehuels/graphderiv/pkg/io"
	"github.com/matzehuels/graphderiv/pkg/render"
	"github.com/matzehuels/graphderiv/pkg/render/nodelink"
)

// RenderOptions configures [Render].
type RenderOptions struct {
	Formats  []string
	Detailed bool    // Time step in node labels
	Scale    float64 // PNG scale factor
}

// SetDefaults sets default values for rendering.
func (o *RenderOptions) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = 2.0
	}
}

// Render generates output artifacts for exp in the requested formats.
// The DOT source and SVG are produced at most once and shared between
// formats.
func Render(ctx context.Context, exp *expansion.Expansion, opts RenderOptions) (map[string][]byte, error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	sg, err := exp.Graph()
	if err != nil {
		return nil, fmt.Errorf("expansion graph: %w", err)
	}
	dot := nodelink.ToDOT(sg, nodelink.Options{Detailed: opts.Detailed})

	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg == nil {
			out, err := nodelink.RenderSVG(dot)
			if err != nil {
				return nil, err
			}
			svg = out
		}
		return svg, nil
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			var buf bytes.Buffer
			err = gio.WriteElements(exp, &buf)
			data = buf.Bytes()
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = svgOnce()
		case FormatPNG:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPNG(ctx, data, opts.Scale)
			}
		case FormatPDF:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
