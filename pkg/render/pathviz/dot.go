package pathviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordgrid/pkg/grid"
)

const (
	pathFill  = "#5fafaf"
	idleColor = "#bcbcbc"
)

// ToDOT converts a board and a path on it to Graphviz DOT format.
// Cell i is node "c<i>"; the path is drawn as directed edges in order.
// p is expected to be a valid path on b.
func ToDOT(b *grid.Board, p grid.Path) string {
	order := make(map[int]int, len(p))
	for i, c := range p {
		order[c] = i + 1
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, width=0.8, height=0.8, fixedsize=true];\n")
	buf.WriteString("  edge [penwidth=3, color=\"" + pathFill + "\"];\n")
	buf.WriteString("\n")

	t := b.Topology()
	for i := 0; i < b.Cells(); i++ {
		x, y := t.Coordinates(i)
		fmt.Fprintf(&buf, "  c%d [%s];\n", i, fmtAttrs(b.Letter(i), x, y, order[i]))
	}

	buf.WriteString("\n")
	for i := 1; i < len(p); i++ {
		fmt.Fprintf(&buf, "  c%d -> c%d;\n", p[i-1], p[i])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(letter rune, x, y, step int) string {
	pos := fmt.Sprintf("pos=\"%d,%d!\"", x, -y)
	if step == 0 {
		return fmt.Sprintf("label=%q, %s, color=%q, fontcolor=%q", string(letter), pos, idleColor, idleColor)
	}
	label := fmt.Sprintf("%s\n%d", string(letter), step)
	return fmt.Sprintf("label=%q, %s, fillcolor=%q, fontcolor=white", label, pos, pathFill)
}

// RenderSVG renders p on b to SVG using Graphviz.
func RenderSVG(ctx context.Context, b *grid.Board, p grid.Path) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(ToDOT(b, p)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg header with one that
// scales to its container.
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

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
