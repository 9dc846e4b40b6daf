// Package selfcheck verifies a build against known answers on the 4×4
// reference board: coordinates, neighbor order, rendering, exhaustive and
// pruned searches, and the word count with the common dictionary.
//
// `wordgrid selfcheck` runs it and exits non-zero on any failure, which
// makes it a quick smoke test for a freshly built binary.
package selfcheck

import (
	"fmt"

	"github.com/matzehuels/wordgrid/pkg/dict"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/search"
)

// CommonWordCount is the number of words the common dictionary yields on the
// reference board, duplicates included.
const CommonWordCount = 22

// Failure describes a check whose result differed from the expected value.
type Failure struct {
	Check string `json:"check"`
	Got   string `json:"got"`
	Want  string `json:"want"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: got %s, want %s", f.Check, f.Got, f.Want)
}

// check is a named comparison of a computed value against its expectation.
type check struct {
	name string
	got  any
	want any
}

// Checks returns the names of all checks in the order Run executes them.
func Checks() []string {
	cs := checks()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.name
	}
	return names
}

// Run executes every check and returns the failures, if any.
func Run() []Failure {
	var failures []Failure
	for _, c := range checks() {
		got, want := fmt.Sprint(c.got), fmt.Sprint(c.want)
		if got != want {
			failures = append(failures, Failure{Check: c.name, Got: got, Want: want})
		}
	}
	return failures
}

func checks() []check {
	t := grid.Standard
	b := grid.Reference()
	exact := dict.Exact("abcdef")

	var cs []check

	for _, tc := range []struct{ x, y, index int }{
		{0, 0, 0}, {1, 0, 1}, {2, 0, 2}, {3, 0, 3}, {0, 1, 4}, {1, 1, 5},
	} {
		cs = append(cs, check{fmt.Sprintf("Index(%d, %d)", tc.x, tc.y), t.Index(tc.x, tc.y), tc.index})
	}
	for _, tc := range []struct{ index, x, y int }{
		{0, 0, 0}, {1, 1, 0}, {3, 3, 0}, {4, 0, 1}, {5, 1, 1}, {8, 0, 2},
	} {
		x, y := t.Coordinates(tc.index)
		cs = append(cs, check{fmt.Sprintf("Coordinates(%d)", tc.index), [2]int{x, y}, [2]int{tc.x, tc.y}})
	}

	cs = append(cs,
		check{"Neighbors(0)", t.Neighbors(0), []int{4, 5, 1}},
		check{"Neighbors(14)", t.Neighbors(14), []int{10, 9, 13, 15, 11}},
		check{"Render(0-6-15)", b.Render(grid.NewPath(0, 6, 15)), "agp"},
		check{
			"From(0..14, AcceptAll)",
			search.From(grid.NewPath(seq(15)...), b, dict.AcceptAll()),
			[]string{"abcdefghijklmnop", "abcdefghijklmno"},
		},
		check{`Exact.IsWord("abcdef")`, exact.IsWord("abcdef"), true},
		check{`Exact.IsWord("gnagna")`, exact.IsWord("gnagna"), false},
		check{`Exact.IsPrefix("ab")`, exact.IsPrefix("ab"), true},
		check{`Exact.IsPrefix("ba")`, exact.IsPrefix("ba"), false},
		check{"From(0..4, Exact)", search.From(grid.NewPath(seq(5)...), b, exact), []string{"abcdef"}},
		check{"len(All(Common))", len(search.All(b, dict.NewTrie(dict.Common()))), CommonWordCount},
	)
	return cs
}

// seq returns 0, 1, ..., n-1.
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
