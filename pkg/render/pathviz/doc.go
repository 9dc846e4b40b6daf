// Package pathviz draws a path on a board as a Graphviz diagram.
//
// # Overview
//
// Every cell becomes a node pinned to its grid position. Cells on the path
// are filled and numbered in visiting order, and the path's steps are drawn
// as arrows. The result shows at a glance how a word is traced.
//
// # Usage
//
//	dot := pathviz.ToDOT(board, path)
//	svg, err := pathviz.RenderSVG(ctx, board, path)
//
// # DOT Format
//
// [ToDOT] produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools (use neato -n or
//     neato with the pinned positions)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine, which honours pinned node positions.
package pathviz
