// Package solve runs a word search end to end for the CLI and the HTTP API.
//
// It turns a serialisable [Options] value into a board and a dictionary,
// consults the result cache, runs the search and reports what it found. By
// centralizing this logic both entry points validate, cache and log the same
// way.
//
// # Usage
//
//	runner := solve.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	res, err := runner.Solve(ctx, solve.Options{
//	    Letters: "abcdefghijklmnop",
//	    Builtin: solve.BuiltinCommon,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.Words), "words")
package solve

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordgrid/pkg/dict"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/search"
)

// Builtin dictionary names.
const (
	// BuiltinCommon is the embedded word list, see dict.Common.
	BuiltinCommon = "common"

	// BuiltinAll accepts every string, so every simple path is reported.
	BuiltinAll = "all"

	// BuiltinExactPrefix selects a one-word dictionary: "exact:<word>".
	BuiltinExactPrefix = "exact:"
)

// DefaultBuiltin is used when no dictionary source is given.
const DefaultBuiltin = BuiltinCommon

// Options describes one solve. It supports JSON serialization for API
// requests.
//
// The board comes from Rows if set, otherwise from Letters laid out on a
// Width×Height grid. With neither, the 4×4 reference board is used.
//
// The dictionary comes from the first source set among Words, DictionaryPath
// and Builtin.
type Options struct {
	// Board
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Letters string   `json:"letters,omitempty"`
	Rows    []string `json:"rows,omitempty"`

	// Dictionary
	Words          []string `json:"words,omitempty"`
	DictionaryPath string   `json:"-"`
	Builtin        string   `json:"builtin,omitempty"`

	// Search. Start need not be a connected path, only non-empty and
	// self-avoiding; the search extends it from its last cell.
	Start   []int `json:"start,omitempty"`
	Unique  bool  `json:"unique,omitempty"`
	Refresh bool  `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a solve.
type Result struct {
	// Board is the board that was searched.
	Board *grid.Board

	// Matches holds every reported word with its path, in search order.
	// Duplicates are kept.
	Matches []search.Match

	// Words is the word list to present: the words of Matches, filtered
	// by Unique when requested.
	Words []string

	// Stats describes the search. It is the stats of the original run when
	// the result came from the cache.
	Stats search.Stats

	// CacheHit is true when the search was skipped.
	CacheHit bool

	// Duration is the wall time of the solve, including cache access.
	Duration time.Duration
}

// ValidateAndSetDefaults checks the options and fills in the reference board
// and the default dictionary. It does not touch the filesystem.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Rows) == 0 {
		if o.Letters == "" {
			o.Letters = string(grid.Reference().Letters())
		}
		if o.Width == 0 && o.Height == 0 {
			o.Width, o.Height = grid.StandardWidth, grid.StandardHeight
		}
		if err := apperr.ValidateDimensions(o.Width, o.Height); err != nil {
			return err
		}
	} else if o.Letters != "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "letters and rows are mutually exclusive")
	}

	if len(o.Words) == 0 && o.DictionaryPath == "" && o.Builtin == "" {
		o.Builtin = DefaultBuiltin
	}
	if err := ValidateBuiltin(o.Builtin); err != nil {
		return err
	}
	for _, w := range o.Words {
		if err := apperr.ValidateWord(w); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ValidateBuiltin checks a builtin dictionary name. The empty name is valid.
func ValidateBuiltin(name string) error {
	switch {
	case name == "", name == BuiltinCommon, name == BuiltinAll:
		return nil
	case strings.HasPrefix(name, BuiltinExactPrefix):
		return apperr.ValidateWord(strings.TrimPrefix(name, BuiltinExactPrefix))
	default:
		return apperr.New(apperr.ErrCodeInvalidDictionary,
			"unknown builtin dictionary %q (must be one of: common, all, exact:<word>)", name)
	}
}

// Board builds the board described by the options.
func (o *Options) Board() (*grid.Board, error) {
	if len(o.Rows) > 0 {
		return grid.ParseRows(o.Rows)
	}
	return grid.ParseBoard(o.Width, o.Height, o.Letters)
}

// Dictionary builds the dictionary described by the options and returns it
// with a fingerprint that identifies its contents for caching.
func (o *Options) Dictionary() (dict.Dictionary, string, error) {
	switch {
	case len(o.Words) > 0:
		return dict.NewTrie(o.Words), dict.Fingerprint(o.Words), nil
	case o.DictionaryPath != "":
		words, err := dict.LoadFile(o.DictionaryPath)
		if err != nil {
			return nil, "", err
		}
		return dict.NewTrie(words), dict.Fingerprint(words), nil
	}

	name := o.Builtin
	if name == "" {
		name = DefaultBuiltin
	}
	switch {
	case name == BuiltinCommon:
		words := dict.Common()
		return dict.NewTrie(words), dict.Fingerprint(words), nil
	case name == BuiltinAll:
		return dict.AcceptAll(), "builtin:" + BuiltinAll, nil
	case strings.HasPrefix(name, BuiltinExactPrefix):
		return dict.Exact(strings.TrimPrefix(name, BuiltinExactPrefix)), "builtin:" + name, nil
	}
	return nil, "", ValidateBuiltin(name)
}

// Unique drops repeated words, keeping the first occurrence of each.
func Unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	res := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		res = append(res, w)
	}
	return res
}
