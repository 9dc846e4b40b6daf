package grid

import (
	"slices"
	"strings"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

// referenceLetters fills the 4×4 reference board row by row.
const referenceLetters = "abcdefghijklmnop"

// Board is a read-only letter grid.
type Board struct {
	topo    Topology
	letters []rune
	adj     [][]int
}

// NewBoard builds a board from one letter per cell in row-major order.
// The letters slice is copied.
func NewBoard(t Topology, letters []rune) (*Board, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := apperr.ValidateLetters(letters, t.Cells()); err != nil {
		return nil, err
	}
	return &Board{
		topo:    t,
		letters: slices.Clone(letters),
		adj:     t.adjacency(),
	}, nil
}

// ParseBoard builds a board from a string holding one letter per cell.
func ParseBoard(width, height int, letters string) (*Board, error) {
	return NewBoard(Topology{Width: width, Height: height}, []rune(letters))
}

// ParseRows builds a board from equally long rows of letters.
func ParseRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidBoard, "board has no rows")
	}
	width := len([]rune(rows[0]))
	letters := make([]rune, 0, width*len(rows))
	for i, row := range rows {
		r := []rune(row)
		if len(r) != width {
			return nil, apperr.New(apperr.ErrCodeInvalidBoard, "row %d has %d letters, want %d", i, len(r), width)
		}
		letters = append(letters, r...)
	}
	return NewBoard(Topology{Width: width, Height: len(rows)}, letters)
}

// Reference returns the 4×4 board lettered a..p row by row.
func Reference() *Board {
	b, err := ParseBoard(StandardWidth, StandardHeight, referenceLetters)
	if err != nil {
		panic(err)
	}
	return b
}

// Topology returns the board's shape.
func (b *Board) Topology() Topology {
	return b.topo
}

// Cells returns the number of cells on the board.
func (b *Board) Cells() int {
	return b.topo.Cells()
}

// Letter returns the letter in cell index.
func (b *Board) Letter(index int) rune {
	return b.letters[index]
}

// Letters returns a copy of the board letters in row-major order.
func (b *Board) Letters() []rune {
	return slices.Clone(b.letters)
}

// Neighbors returns the precomputed neighbor list of index, in the same
// order as Topology.Neighbors. The slice is shared; do not modify it.
func (b *Board) Neighbors(index int) []int {
	return b.adj[index]
}

// Render spells out the letters along p.
func (b *Board) Render(p Path) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, c := range p {
		sb.WriteRune(b.letters[c])
	}
	return sb.String()
}

// Rows returns the board as one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.topo.Height)
	for y := range rows {
		start := y * b.topo.Width
		rows[y] = string(b.letters[start : start+b.topo.Width])
	}
	return rows
}

// String returns the rows separated by newlines.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
