package trie

// Fold reduces the tree bottom-up. f receives each node along with the results
// already computed for its children, in child insertion order; leaves receive
// an empty slice. The result for the root is returned.
func Fold[A any](t *Trie, f func(n *Node, children []A) A) A {
	return foldNode(t.root, f)
}

func foldNode[A any](n *Node, f func(*Node, []A) A) A {
	results := make([]A, 0, len(n.order))
	for _, r := range n.order {
		results = append(results, foldNode(n.children[r], f))
	}
	return f(n, results)
}
