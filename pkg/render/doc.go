// Package render groups the visual outputs of urbancharge.
//
// The only renderer today is [nodelink], which draws a community as a
// node-link diagram through Graphviz: charging cities are filled, cities
// without access are outlined in red, and roads are plain edges. It writes
// SVG, PNG, or the DOT source itself, and caches rendered images by the hash
// of their DOT input.
//
//	r := nodelink.NewRenderer(cache.NewNullCache())
//	svg, err := r.Render(ctx, uc.ToDOT(), nodelink.Options{Format: nodelink.FormatSVG})
//
// [nodelink]: github.com/urbancharge/urbancharge/pkg/render/nodelink
package render
