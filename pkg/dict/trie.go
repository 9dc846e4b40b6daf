package dict

// Trie stores a word list as a rune trie.
type Trie struct {
	root  *trieNode
	count int
}

type trieNode struct {
	children map[rune]*trieNode
	word     bool
}

// NewTrie builds a trie from words. Duplicates are collapsed.
func NewTrie(words []string) *Trie {
	t := &Trie{root: &trieNode{}}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds w to the trie. Inserting the empty string marks the root, which
// makes "" a word.
func (t *Trie) Insert(w string) {
	n := t.root
	for _, r := range w {
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			n.children[r] = child
		}
		n = child
	}
	if !n.word {
		n.word = true
		t.count++
	}
}

// IsWord reports whether s was inserted.
func (t *Trie) IsWord(s string) bool {
	n := t.find(s)
	return n != nil && n.word
}

// IsPrefix reports whether any inserted word starts with s.
func (t *Trie) IsPrefix(s string) bool {
	n := t.find(s)
	if n == nil {
		return false
	}
	// The root of an empty trie has no words below it.
	return n.word || len(n.children) > 0
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.count
}

func (t *Trie) find(s string) *trieNode {
	n := t.root
	for _, r := range s {
		n = n.children[r]
		if n == nil {
			return nil
		}
	}
	return n
}
