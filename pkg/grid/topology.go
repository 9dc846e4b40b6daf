package grid

import (
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

// Reference board dimensions.
const (
	StandardWidth  = 4
	StandardHeight = 4
)

// Standard is the 4×4 topology of a classic board.
var Standard = Topology{Width: StandardWidth, Height: StandardHeight}

// offsets lists the (dx, dy) steps to the eight neighbors of a cell.
// The order is part of the contract: it fixes the order of search results.
var offsets = [8][2]int{
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1},
}

// Topology describes the shape of a board. It holds no letters.
type Topology struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// Cells returns the number of cells on the board.
func (t Topology) Cells() int {
	return t.Width * t.Height
}

// Coordinates converts a cell index to its (x, y) position.
func (t Topology) Coordinates(index int) (x, y int) {
	return index % t.Width, index / t.Width
}

// Index converts an (x, y) position to its cell index.
func (t Topology) Index(x, y int) int {
	return y*t.Width + x
}

// InBounds reports whether (x, y) lies on the board.
func (t Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// Valid reports whether index addresses a cell on the board.
func (t Topology) Valid(index int) bool {
	return index >= 0 && index < t.Cells()
}

// Neighbors returns the cells adjacent to index, in the fixed compass order
// with off-board positions dropped. Corners have 3 neighbors, edge cells 5,
// interior cells 8.
func (t Topology) Neighbors(index int) []int {
	x, y := t.Coordinates(index)
	res := make([]int, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if t.InBounds(nx, ny) {
			res = append(res, t.Index(nx, ny))
		}
	}
	return res
}

// Validate checks the dimensions.
func (t Topology) Validate() error {
	return apperr.ValidateDimensions(t.Width, t.Height)
}

// ValidateCell checks that index addresses a cell on the board.
func (t Topology) ValidateCell(index int) error {
	return apperr.ValidateCell(index, t.Cells())
}

// ValidatePath checks that cells form a non-empty, in-range, self-avoiding
// path on the board. Adjacency between consecutive cells is checked too.
func (t Topology) ValidatePath(cells []int) error {
	if err := apperr.ValidatePath(cells, t.Cells()); err != nil {
		return err
	}
	for i := 1; i < len(cells); i++ {
		if !t.Adjacent(cells[i-1], cells[i]) {
			return apperr.New(apperr.ErrCodeInvalidPath, "cells %d and %d are not adjacent", cells[i-1], cells[i])
		}
	}
	return nil
}

// Adjacent reports whether a and b are distinct touching cells.
func (t Topology) Adjacent(a, b int) bool {
	ax, ay := t.Coordinates(a)
	bx, by := t.Coordinates(b)
	dx, dy := ax-bx, ay-by
	return a != b && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// adjacency precomputes Neighbors for every cell.
func (t Topology) adjacency() [][]int {
	adj := make([][]int, t.Cells())
	for i := range adj {
		adj[i] = t.Neighbors(i)
	}
	return adj
}
