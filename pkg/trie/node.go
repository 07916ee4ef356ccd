package trie

// Node is a single position in the tree. The path from the root to a node
// spells a prefix; terminal nodes mark complete words and carry a rank.
type Node struct {
	children map[rune]*Node
	order    []rune // child symbols in insertion order
	terminal bool
	rank     int
}

func newNode() *Node {
	return &Node{}
}

// IsTerminal reports whether the path to this node spells a stored word.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// Rank returns the popularity rank of a terminal node, 0 otherwise.
// Lower ranks are more popular.
func (n *Node) Rank() int {
	return n.rank
}

// NumChildren returns the number of immediate children.
func (n *Node) NumChildren() int {
	return len(n.order)
}

// Symbols returns the child symbols in insertion order.
func (n *Node) Symbols() []rune {
	out := make([]rune, len(n.order))
	copy(out, n.order)
	return out
}

func (n *Node) child(r rune) *Node {
	return n.children[r]
}

func (n *Node) addChild(r rune) *Node {
	if c, ok := n.children[r]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[rune]*Node, 1)
	}
	c := newNode()
	n.children[r] = c
	n.order = append(n.order, r)
	return c
}

func (n *Node) deleteChild(r rune) {
	if _, ok := n.children[r]; !ok {
		return
	}
	delete(n.children, r)
	for i, s := range n.order {
		if s == r {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// find follows symbols from n and returns the node reached, or nil when the
// path does not exist.
func (n *Node) find(symbols []rune) *Node {
	cur := n
	for _, r := range symbols {
		cur = cur.child(r)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// remove clears the terminal mark at the end of symbols and prunes nodes that
// end up childless and non-terminal. It reports whether n itself may be pruned
// by its parent.
func (n *Node) remove(symbols []rune) bool {
	if len(symbols) == 0 {
		n.terminal = false
		n.rank = 0
	} else if c := n.child(symbols[0]); c != nil && c.remove(symbols[1:]) {
		n.deleteChild(symbols[0])
	}
	return !n.terminal && len(n.order) == 0
}

// walk visits n and its subtree in pre-order, children in insertion order.
// path is the word spelled up to n; fn must not retain it.
func (n *Node) walk(path []rune, fn func(path []rune, n *Node)) {
	fn(path, n)
	for _, r := range n.order {
		n.children[r].walk(append(path, r), fn)
	}
}
