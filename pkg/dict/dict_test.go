package dict_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordgrid/pkg/dict"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

func TestAcceptAll(t *testing.T) {
	d := dict.AcceptAll()
	for _, s := range []string{"", "a", "zzzz", "abcdefghijklmnop"} {
		assert.True(t, d.IsWord(s), s)
		assert.True(t, d.IsPrefix(s), s)
	}
}

func TestExact(t *testing.T) {
	d := dict.Exact("abcdef")

	assert.True(t, d.IsWord("abcdef"))
	assert.False(t, d.IsWord("gnagna"))
	assert.False(t, d.IsWord("abc"))

	assert.True(t, d.IsPrefix("ab"))
	assert.True(t, d.IsPrefix("abcdef"))
	assert.True(t, d.IsPrefix(""))
	assert.False(t, d.IsPrefix("ba"))
	assert.False(t, d.IsPrefix("abcdefg"))
}

func TestSet(t *testing.T) {
	d := dict.NewSet([]string{"knife", "knop", "knop", "ok"})

	assert.Equal(t, 3, d.Len())
	assert.True(t, d.IsWord("knife"))
	assert.False(t, d.IsWord("kn"))
	assert.True(t, d.IsPrefix("kn"))
	assert.True(t, d.IsPrefix("ok"))
	assert.False(t, d.IsPrefix("oka"))
	assert.False(t, d.IsPrefix("z"))
}

func TestNoCaseFolding(t *testing.T) {
	for name, d := range map[string]dict.Dictionary{
		"set":  dict.NewSet([]string{"American"}),
		"trie": dict.NewTrie([]string{"American"}),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, d.IsWord("American"))
			assert.False(t, d.IsWord("american"))
			assert.False(t, d.IsPrefix("am"))
		})
	}
}

func TestEmptyDictionaries(t *testing.T) {
	for name, d := range map[string]dict.Dictionary{
		"set":  dict.NewSet(nil),
		"trie": dict.NewTrie(nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, d.IsWord(""))
			assert.False(t, d.IsPrefix(""))
			assert.False(t, d.IsPrefix("a"))
		})
	}
}

// TestTrieMatchesSet checks that both finite dictionaries answer every
// prefix of every board-length string the same way.
func TestTrieMatchesSet(t *testing.T) {
	words := dict.Common()
	set := dict.NewSet(words)
	trie := dict.NewTrie(words)

	assert.Equal(t, set.Len(), trie.Len())

	probes := []string{"", "a", "ab", "abo", "about", "abouts", "kn", "knif", "knife", "zz", "Ame", "n'", "n't", "onie", "onion"}
	for _, w := range words[:200] {
		for i := 0; i <= len(w); i++ {
			probes = append(probes, w[:i])
		}
	}
	for _, p := range probes {
		assert.Equal(t, set.IsWord(p), trie.IsWord(p), "IsWord(%q)", p)
		assert.Equal(t, set.IsPrefix(p), trie.IsPrefix(p), "IsPrefix(%q)", p)
	}
}

func TestWordImpliesPrefix(t *testing.T) {
	words := dict.Common()
	dicts := []dict.Dictionary{dict.NewSet(words), dict.NewTrie(words), dict.Exact("abcdef"), dict.AcceptAll()}
	for _, d := range dicts {
		for _, w := range append(words, "abcdef") {
			if d.IsWord(w) {
				require.True(t, d.IsPrefix(w), "%T: IsWord(%q) without IsPrefix", d, w)
			}
		}
	}
}

func TestCommon(t *testing.T) {
	words := dict.Common()
	set := dict.NewSet(words)

	assert.Greater(t, set.Len(), 1000)
	for _, w := range []string{"a", "knife", "plonk", "American", "n't", "yourself"} {
		assert.True(t, set.IsWord(w), w)
	}
	assert.NotContains(t, words, "", "blank lines are skipped")

	words[0] = "mutated"
	assert.NotEqual(t, "mutated", dict.Common()[0], "Common returns a copy")
}

func TestLoad(t *testing.T) {
	in := "# header\nalpha\n\n  beta  \r\ngamma\n# trailing comment\n"
	words, err := dict.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, words)
}

func TestLoadRejectsBadEntry(t *testing.T) {
	_, err := dict.Load(strings.NewReader("ok\nice cream\n"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidDictionary))
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("knop\nkoji\n"), 0o644))

	words, err := dict.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"knop", "koji"}, words)

	_, err = dict.LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ErrCodeFileNotFound))
}

func TestFingerprint(t *testing.T) {
	a := dict.Fingerprint([]string{"b", "a", "a"})
	b := dict.Fingerprint([]string{"a", "b"})
	c := dict.Fingerprint([]string{"a", "c"})

	assert.Equal(t, a, b, "order and duplicates do not matter")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
