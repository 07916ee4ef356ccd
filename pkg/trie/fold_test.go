package trie

import (
	"reflect"
	"testing"
)

func TestFoldCountsWords(t *testing.T) {
	dict := newTrie("hello", "hell", "word", "to")
	words := Fold(dict, func(n *Node, children []int) int {
		total := 0
		if n.IsTerminal() {
			total++
		}
		for _, c := range children {
			total += c
		}
		return total
	})
	if words != dict.Len() {
		t.Errorf("Fold word count = %d, want %d", words, dict.Len())
	}
}

func TestFoldChildOrder(t *testing.T) {
	dict := New()
	dict.InsertRanked("b", 1)
	dict.InsertRanked("a", 2)
	dict.InsertRanked("c", 3)

	ranks := Fold(dict, func(n *Node, children [][]int) []int {
		var out []int
		if n.IsTerminal() {
			out = append(out, n.Rank())
		}
		for _, c := range children {
			out = append(out, c...)
		}
		return out
	})
	if want := []int{1, 2, 3}; !reflect.DeepEqual(ranks, want) {
		t.Errorf("Fold ranks = %v, want %v", ranks, want)
	}
}

func TestFoldLeavesGetEmptyChildren(t *testing.T) {
	dict := newTrie("ab", "ac")
	ok := Fold(dict, func(n *Node, children []bool) bool {
		if len(children) != n.NumChildren() {
			return false
		}
		for _, c := range children {
			if !c {
				return false
			}
		}
		return true
	})
	if !ok {
		t.Errorf("Fold passed a child result count that differs from NumChildren")
	}
}

func TestFoldEmptyTree(t *testing.T) {
	calls := Fold(New(), func(_ *Node, children []int) int {
		return 1 + len(children)
	})
	if calls != 1 {
		t.Errorf("Fold on root-only tree = %d, want 1", calls)
	}
}
