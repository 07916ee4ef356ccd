package trie

import (
	"cmp"
	"slices"
	"strings"
)

// Match is a stored word together with its rank.
type Match struct {
	Word string
	Rank int
}

// compareMatches orders by ascending rank, then lexicographically.
func compareMatches(a, b Match) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
}

// collect gathers every stored word starting with prefix, in traversal order.
func (t *Trie) collect(prefix string) []Match {
	symbols := []rune(prefix)
	n := t.root.find(symbols)
	if n == nil {
		return nil
	}
	var out []Match
	path := make([]rune, len(symbols), len(symbols)+16)
	copy(path, symbols)
	n.walk(path, func(word []rune, m *Node) {
		if m.terminal {
			out = append(out, Match{Word: string(word), Rank: m.rank})
		}
	})
	return out
}

// Predict returns the most popular word starting with prefix. A prefix that is
// itself a stored word competes with its extensions.
func (t *Trie) Predict(prefix string) (string, bool) {
	symbols := []rune(prefix)
	n := t.root.find(symbols)
	if n == nil {
		return "", false
	}

	var best Match
	found := false
	path := make([]rune, len(symbols), len(symbols)+16)
	copy(path, symbols)
	n.walk(path, func(word []rune, m *Node) {
		if !m.terminal {
			return
		}
		if found && (m.rank > best.Rank || m.rank == best.Rank && compareRunes(word, best.Word) >= 0) {
			return
		}
		best, found = Match{Word: string(word), Rank: m.rank}, true
	})
	return best.Word, found
}

// compareRunes compares word with s in the order strings.Compare gives
// string(word) and s. UTF-8 preserves code point order.
func compareRunes(word []rune, s string) int {
	i := 0
	for _, r := range s {
		if i == len(word) {
			return -1
		}
		if c := cmp.Compare(word[i], r); c != 0 {
			return c
		}
		i++
	}
	if i < len(word) {
		return 1
	}
	return 0
}

// Matches returns up to n words starting with prefix together with their
// ranks, most popular first. Equal ranks are ordered lexicographically.
func (t *Trie) Matches(prefix string, n int) []Match {
	if n <= 0 {
		return []Match{}
	}
	matches := t.collect(prefix)
	if len(matches) == 0 {
		return []Match{}
	}
	slices.SortFunc(matches, compareMatches)
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// PredictN returns up to n words starting with prefix, most popular first.
// It returns an empty slice when nothing matches.
func (t *Trie) PredictN(prefix string, n int) []string {
	matches := t.Matches(prefix, n)
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	return words
}
