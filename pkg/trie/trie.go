// Package trie implements a ranked prefix-tree dictionary.
//
// Words are stored as sequences of runes, verbatim and case-sensitive. Every
// stored word carries a rank where lower values mean more popular words. A
// Trie is not safe for concurrent use; callers sharing one must guard it with
// a single lock around every call.
package trie

import (
	"github.com/charmbracelet/log"
)

// Trie is a dictionary of ranked words.
type Trie struct {
	root     *Node
	nextRank int
	words    int
}

// New returns an empty dictionary. Its first default-ranked word gets rank 1.
func New() *Trie {
	return &Trie{
		root:     newNode(),
		nextRank: 1,
	}
}

// Root returns the root node.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.words
}

// Insert stores word with the next sequential rank. Re-inserting a stored
// word leaves its rank untouched. The empty word marks the root.
func (t *Trie) Insert(word string) {
	n := t.descend(word)
	if n.terminal {
		return
	}
	n.terminal = true
	n.rank = t.nextRank
	t.nextRank++
	t.words++
}

// InsertRanked stores word with the given rank, overwriting any previous rank.
func (t *Trie) InsertRanked(word string, rank int) {
	n := t.descend(word)
	if !n.terminal {
		t.words++
	}
	n.terminal = true
	n.rank = rank
}

func (t *Trie) descend(word string) *Node {
	n := t.root
	for _, r := range word {
		n = n.addChild(r)
	}
	return n
}

// Remove deletes word from the dictionary. It returns true when the word's own
// node was pruned from the tree, and false when the node survives as a prefix
// of other words or the word was not stored.
func (t *Trie) Remove(word string) bool {
	symbols := []rune(word)
	n := t.root.find(symbols)
	if n == nil || !n.terminal {
		return false
	}
	clean := len(symbols) > 0 && len(n.order) == 0
	t.root.remove(symbols)
	t.words--
	log.Debug("removed word", "word", word, "clean", clean)
	return clean
}

// Contains reports whether word is stored.
func (t *Trie) Contains(word string) bool {
	n := t.root.find([]rune(word))
	return n != nil && n.terminal
}

// HasPrefix reports whether any path in the tree spells prefix, stored word
// or not.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.root.find([]rune(prefix)) != nil
}

// Rank returns the rank of a stored word.
func (t *Trie) Rank(word string) (int, bool) {
	n := t.root.find([]rune(word))
	if n == nil || !n.terminal {
		return 0, false
	}
	return n.rank, true
}
