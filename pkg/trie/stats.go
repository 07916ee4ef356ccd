package trie

import "unicode/utf8"

// Size returns the number of nodes including the root.
func (t *Trie) Size() int {
	return Fold(t, func(_ *Node, children []int) int {
		size := 1
		for _, c := range children {
			size += c
		}
		return size
	})
}

// Height returns the number of edges on the longest root-to-leaf path.
func (t *Trie) Height() int {
	return Fold(t, func(_ *Node, children []int) int {
		if len(children) == 0 {
			return 0
		}
		return 1 + slicesMax(children)
	})
}

// NumLeaves returns the number of childless nodes. A root-only tree has one
// leaf, the root.
func (t *Trie) NumLeaves() int {
	return Fold(t, func(_ *Node, children []int) int {
		if len(children) == 0 {
			return 1
		}
		leaves := 0
		for _, c := range children {
			leaves += c
		}
		return leaves
	})
}

// MaximumBranching returns the largest child count of any node.
func (t *Trie) MaximumBranching() int {
	return Fold(t, func(n *Node, children []int) int {
		return max(n.NumChildren(), slicesMax(children))
	})
}

// LongestWord returns the longest stored word. Among words of equal length
// the first one met in depth-first insertion order wins.
func (t *Trie) LongestWord() string {
	longest, longestLen := "", 0
	t.root.walk(nil, func(word []rune, n *Node) {
		if n.terminal && len(word) > longestLen {
			longest, longestLen = string(word), len(word)
		}
	})
	return longest
}

// AllWords returns every stored word. A word comes before the words it is a
// prefix of, and siblings follow insertion order.
func (t *Trie) AllWords() []string {
	words := make([]string, 0, t.words)
	t.root.walk(nil, func(word []rune, n *Node) {
		if n.terminal {
			words = append(words, string(word))
		}
	})
	return words
}

// Stats is a snapshot of the structural statistics.
type Stats struct {
	Words            int
	Size             int
	Height           int
	Leaves           int
	MaximumBranching int
	LongestWord      string
}

// Stats computes all structural statistics.
func (t *Trie) Stats() Stats {
	return Stats{
		Words:            t.words,
		Size:             t.Size(),
		Height:           t.Height(),
		Leaves:           t.NumLeaves(),
		MaximumBranching: t.MaximumBranching(),
		LongestWord:      t.LongestWord(),
	}
}

// LongestWordLen returns the rune count of the longest stored word.
func (s Stats) LongestWordLen() int {
	return utf8.RuneCountInString(s.LongestWord)
}

func slicesMax(values []int) int {
	m := 0
	for _, v := range values {
		m = max(m, v)
	}
	return m
}
