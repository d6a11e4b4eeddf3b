// Package render converts rendered graph images between formats.
//
// Graph drawing itself lives in the [nodelink] subpackage, which produces
// SVG through Graphviz. This package turns that SVG into PDF or PNG with
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [ErrConverterMissing] is returned when rsvg-convert is not on PATH.
package render
