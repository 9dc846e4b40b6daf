package dict

import (
	"bufio"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

//go:embed data/common.txt
var commonWords string

var (
	commonOnce sync.Once
	commonList []string
)

// Common returns the built-in word list: about a thousand frequent English
// words plus the words spelled on the reference board. The returned slice is
// a fresh copy.
func Common() []string {
	commonOnce.Do(func() {
		words, err := Load(strings.NewReader(commonWords))
		if err != nil {
			panic(err)
		}
		commonList = words
	})
	return slices.Clone(commonList)
}

// Load reads a newline-delimited word list from r.
//
// Surrounding whitespace is trimmed; blank lines and lines starting with '#'
// are skipped. Case is preserved. Entries that still contain whitespace or
// control characters are rejected with an INVALID_DICTIONARY error naming the
// offending line.
func Load(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	words := make([]string, 0, 1024)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if err := apperr.ValidateWord(w); err != nil {
			return nil, apperr.New(apperr.ErrCodeInvalidDictionary, "line %d: %s", line, apperr.UserMessage(err))
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidDictionary, err, "read word list")
	}
	return words, nil
}

// LoadFile reads a word list from the named file with Load.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "dictionary %s", path)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidDictionary, err, "open dictionary %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Fingerprint returns a SHA-256 hex digest identifying the set of words,
// independent of order and duplicates.
func Fingerprint(words []string) string {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h := sha256.New()
	for _, w := range sorted {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
