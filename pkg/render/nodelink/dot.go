package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

// Format is an output format for a rendered community.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatDOT Format = "dot" // The description itself, unrendered
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatSVG, FormatPNG, FormatDOT} }

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatSVG, FormatPNG, FormatDOT:
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown format %q (want svg, png or dot)", s)
}

// Options configures Render.
type Options struct {
	Format Format
	// Scale multiplies the PNG resolution. Values <= 0 mean 1.
	Scale float64
}

// Render produces the community image described by dot in the given format.
func Render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG, "":
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot, opts.Scale)
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown format %q", opts.Format)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	return render(ctx, withDPI(dot, scale), graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeUnavailable, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeUnavailable, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeUnavailable, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// defaultDPI is the Graphviz bitmap resolution at scale 1.
const defaultDPI = 96

// withDPI sets the graph resolution for bitmap output.
func withDPI(dot string, scale float64) string {
	if scale <= 0 || scale == 1 {
		return dot
	}
	i := strings.Index(dot, "{")
	if i < 0 {
		return dot
	}
	return dot[:i+1] + fmt.Sprintf("\n  dpi=%g;", defaultDPI*scale) + dot[i+1:]
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
