// Package grid models a rectangular letter board and the paths traced on it.
//
// # Topology
//
// A [Topology] is just a width and a height. Cells are addressed by a single
// row-major index in [0, Width*Height):
//
//	y     = index / Width
//	x     = index % Width
//	index = y*Width + x
//
// Two cells are adjacent when they touch horizontally, vertically or
// diagonally. [Topology.Neighbors] always visits the eight compass offsets in
// the same order, so every traversal built on it is reproducible:
//
//	(0,-1) (-1,-1) (-1,0) (-1,1) (0,1) (1,1) (1,0) (1,-1)
//
// On the 4×4 reference board cell 0 has neighbors [4 5 1] and cell 14 has
// neighbors [10 9 13 15 11].
//
// # Boards and Paths
//
// A [Board] pairs a topology with one letter per cell. A [Path] is an ordered,
// self-avoiding sequence of cell indices; [Board.Render] spells it out.
// Paths are values: [Path.Extend] returns a new path and never touches the
// receiver, so recursive callers can hand the same parent to many branches.
//
// Indices outside the board are a caller error. Topology and Board methods do
// not check them; validate untrusted input with [Topology.ValidatePath] or
// [Topology.ValidateCell] first.
package grid
