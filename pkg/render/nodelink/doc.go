// Package nodelink renders urban communities as node-link diagrams.
//
// # Overview
//
// The community model describes itself in Graphviz DOT (see
// [community.UrbanCommunity.ToDOT]): cities are circles, cities hosting a
// charging point are filled, and cities left without access are outlined in
// red. This package turns that description into an image in-process, so no
// Graphviz installation is required.
//
// # Usage
//
//	svg, err := nodelink.RenderSVG(ctx, uc.ToDOT())
//	png, err := nodelink.RenderPNG(ctx, uc.ToDOT(), 2.0) // 2x scale
//
// A [Renderer] adds a content-addressed cache in front of these functions:
//
//	r := nodelink.NewRenderer(c)
//	img, err := r.Render(ctx, uc.ToDOT(), nodelink.Options{Format: nodelink.FormatSVG})
//
// Rendering is optional. Failures are UNAVAILABLE errors which callers are
// expected to report as warnings; nothing in the community model depends on
// an image being produced.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and PNG
// rendering. [Open] hands the result to the platform's default viewer.
//
// [community.UrbanCommunity.ToDOT]: github.com/urbancharge/urbancharge/pkg/community.UrbanCommunity.ToDOT
package nodelink
