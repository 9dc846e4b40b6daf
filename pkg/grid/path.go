package grid

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

// Path is an ordered sequence of distinct cell indices.
//
// A Path is treated as immutable once built. Extend allocates, so a parent
// path can be shared by any number of branches.
type Path []int

// NewPath returns a path over a copy of cells.
func NewPath(cells ...int) Path {
	return slices.Clone(Path(cells))
}

// Len returns the number of cells on the path.
func (p Path) Len() int {
	return len(p)
}

// Last returns the final cell of a non-empty path.
func (p Path) Last() int {
	return p[len(p)-1]
}

// Contains reports whether cell is already on the path.
func (p Path) Contains(cell int) bool {
	return slices.Contains(p, cell)
}

// Extend returns a new path with cell appended. The receiver is unchanged.
func (p Path) Extend(cell int) Path {
	n := make(Path, len(p)+1)
	copy(n, p)
	n[len(p)] = cell
	return n
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// String formats the path as "0-6-15".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, "-")
}

// ParsePath parses a list of cell indices separated by commas, spaces or
// dashes, such as "0,1,2" or "0-6-15". A dash only separates two indices, so
// "-3" or "0--3" is an error rather than a negative or skipped cell. It does
// not check the cells against a board; use Topology.ValidatePath for that.
func ParsePath(s string) (Path, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	p := make(Path, 0, len(fields))
	for _, f := range fields {
		for _, part := range strings.Split(f, "-") {
			if part == "" || strings.IndexFunc(part, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
				return nil, apperr.New(apperr.ErrCodeInvalidPath, "parse path %q: %q is not a cell index", s, f)
			}
			c, err := strconv.Atoi(part)
			if err != nil {
				return nil, apperr.Wrap(apperr.ErrCodeInvalidPath, err, "parse path %q", s)
			}
			p = append(p, c)
		}
	}
	return p, nil
}
