// Package dict defines the word-lookup capability consumed by the search and
// the dictionaries that implement it.
//
// A [Dictionary] answers two questions about a string: is it a complete word,
// and could some word still start with it. The search stops extending a path
// as soon as IsPrefix fails, so every implementation must keep the two
// consistent: IsWord(s) implies IsPrefix(s). A dictionary that breaks this
// rule silently hides words from the search.
//
// Lookups are exact. Nothing in this package folds case or normalises
// Unicode; a board of lowercase letters only ever matches lowercase entries.
//
// # Implementations
//
//   - [AcceptAll]: every string is a word; enumerates every simple path.
//   - [Exact]: a single word, with its prefixes.
//   - [Set]: a finite word list; prefix tests scan the whole list.
//   - [Trie]: the same word list with prefix tests proportional to len(s).
//
// Word lists come from [Load], [LoadFile] or the embedded [Common] list.
package dict

import "strings"

// Dictionary is the lookup capability the search depends on.
type Dictionary interface {
	// IsWord reports whether s, taken as a whole, is a recognised word.
	IsWord(s string) bool

	// IsPrefix reports whether some recognised word begins with s.
	// A word counts as beginning with itself.
	IsPrefix(s string) bool
}

// acceptAll treats every string as a word.
type acceptAll struct{}

// AcceptAll returns a dictionary for which both lookups always succeed.
// Searching with it reports every simple path on the board.
func AcceptAll() Dictionary {
	return acceptAll{}
}

func (acceptAll) IsWord(string) bool   { return true }
func (acceptAll) IsPrefix(string) bool { return true }

// exact recognises a single word.
type exact struct {
	word string
}

// Exact returns a dictionary that knows exactly one word.
func Exact(word string) Dictionary {
	return exact{word: word}
}

func (d exact) IsWord(s string) bool   { return s == d.word }
func (d exact) IsPrefix(s string) bool { return strings.HasPrefix(d.word, s) }

// Set is a finite word list.
//
// IsPrefix scans every member, which is fine for the few-thousand-word lists
// it was written for. Use a Trie for full-size dictionaries.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a set from words. Duplicates are collapsed.
func NewSet(words []string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &Set{words: m}
}

// IsWord reports whether s is a member.
func (d *Set) IsWord(s string) bool {
	_, ok := d.words[s]
	return ok
}

// IsPrefix reports whether any member starts with s.
func (d *Set) IsPrefix(s string) bool {
	for w := range d.words {
		if strings.HasPrefix(w, s) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct words.
func (d *Set) Len() int {
	return len(d.words)
}

// Ensure the implementations satisfy Dictionary.
var (
	_ Dictionary = acceptAll{}
	_ Dictionary = exact{}
	_ Dictionary = (*Set)(nil)
	_ Dictionary = (*Trie)(nil)
)
