// Package search enumerates the dictionary words that can be traced on a
// board along self-avoiding paths of adjacent cells.
//
// # Algorithm
//
// The search is a depth-first backtracking walk. For a path p:
//
//  1. Render p to its string s.
//  2. If the dictionary says no word starts with s, abandon p and everything
//     that extends it.
//  3. For each neighbor of p's last cell, in [grid.Topology.Neighbors] order,
//     that is not already on p, search p extended by that neighbor and append
//     its results.
//  4. If s is a word, append s.
//
// Because step 4 runs after step 3, a word is reported after all of its
// longer extensions along the same path (post-order). [All] runs the walk once
// from every cell in increasing index order and concatenates the results.
//
// Results are not deduplicated: two different paths spelling the same string
// produce two entries.
//
// # Purity
//
// A search reads the board and dictionary and nothing else. It allocates a
// new path for every extension and keeps no state between calls; path length
// is bounded by the number of cells. [From], [All] and the Trace functions
// always run to completion. [TraceAllUntil] and [TraceFromUntil] also consult
// a stop function every [StopInterval] visited paths and give up when it says
// so, which lets callers bound the work or honour a cancelled context.
package search

import (
	"github.com/matzehuels/wordgrid/pkg/dict"
	"github.com/matzehuels/wordgrid/pkg/grid"
)

// Match is a reported word together with the path that spelled it.
type Match struct {
	Word string    `json:"word"`
	Path grid.Path `json:"path"`
}

// Stats counts the work done by a traced search.
type Stats struct {
	// Visited is the number of paths rendered and offered to the dictionary.
	Visited int `json:"visited"`

	// Pruned is the number of visited paths rejected by IsPrefix.
	Pruned int `json:"pruned"`

	// Longest is the length of the longest visited path.
	Longest int `json:"longest"`
}

// From returns every word reachable by extending start, in post-order.
// start must be a non-empty, self-avoiding path on b.
func From(start grid.Path, b *grid.Board, d dict.Dictionary) []string {
	return words(TraceFrom(start, b, d))
}

// All returns every word on the board: the results of From for each
// single-cell path 0..Cells()-1, concatenated in cell order.
func All(b *grid.Board, d dict.Dictionary) []string {
	return words(TraceAll(b, d))
}

// TraceFrom is From, keeping the path that produced each word.
func TraceFrom(start grid.Path, b *grid.Board, d dict.Dictionary) []Match {
	w := walker{board: b, dict: d}
	return w.walk(start)
}

// TraceAll is All, keeping the path that produced each word.
func TraceAll(b *grid.Board, d dict.Dictionary) []Match {
	m, _ := TraceAllStats(b, d)
	return m
}

// TraceAllStats is TraceAll, also reporting how much of the search space was
// visited.
func TraceAllStats(b *grid.Board, d dict.Dictionary) ([]Match, Stats) {
	w := walker{board: b, dict: d}
	var res []Match
	for i := 0; i < b.Cells(); i++ {
		res = append(res, w.walk(grid.NewPath(i))...)
	}
	return res, w.stats
}

// TraceFromStats is TraceFrom, also reporting how much of the search space
// was visited.
func TraceFromStats(start grid.Path, b *grid.Board, d dict.Dictionary) ([]Match, Stats) {
	w := walker{board: b, dict: d}
	res := w.walk(start)
	return res, w.stats
}

// StopInterval is how many paths are visited between calls to a stop
// function.
const StopInterval = 1024

// TraceAllUntil is TraceAllStats that gives up when stop returns true. stop
// is called with the counters so far after every StopInterval visited paths.
// The returned bool reports whether the search completed; when it is false
// the matches are partial.
func TraceAllUntil(b *grid.Board, d dict.Dictionary, stop func(Stats) bool) ([]Match, Stats, bool) {
	w := walker{board: b, dict: d, stop: stop}
	var res []Match
	for i := 0; i < b.Cells() && !w.halted; i++ {
		res = append(res, w.walk(grid.NewPath(i))...)
	}
	return res, w.stats, !w.halted
}

// TraceFromUntil is TraceFromStats that gives up when stop returns true, as
// in TraceAllUntil.
func TraceFromUntil(start grid.Path, b *grid.Board, d dict.Dictionary, stop func(Stats) bool) ([]Match, Stats, bool) {
	w := walker{board: b, dict: d, stop: stop}
	res := w.walk(start)
	return res, w.stats, !w.halted
}

// walker carries the read-only inputs and the counters of one search.
type walker struct {
	board  *grid.Board
	dict   dict.Dictionary
	stats  Stats
	stop   func(Stats) bool
	halted bool
}

func (w *walker) walk(p grid.Path) []Match {
	if w.halted {
		return nil
	}
	w.stats.Visited++
	if w.stop != nil && w.stats.Visited%StopInterval == 0 && w.stop(w.stats) {
		w.halted = true
		return nil
	}
	if p.Len() > w.stats.Longest {
		w.stats.Longest = p.Len()
	}

	s := w.board.Render(p)
	if !w.dict.IsPrefix(s) {
		w.stats.Pruned++
		return nil
	}

	var res []Match
	for _, n := range w.board.Neighbors(p.Last()) {
		if p.Contains(n) {
			continue
		}
		res = append(res, w.walk(p.Extend(n))...)
	}

	if w.dict.IsWord(s) {
		res = append(res, Match{Word: s, Path: p})
	}
	return res
}

func words(matches []Match) []string {
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m.Word
	}
	return res
}
