package trie

import (
	"strings"

	"github.com/ledgertree/ledgertree/internal/model"
)

// Find returns the node at path. The empty path is n itself.
func (n *Node) Find(path string) (*Node, bool) {
	if path == "" {
		return n, true
	}
	node := n
	for _, seg := range strings.Split(path, model.AccountSeparator) {
		c, ok := node.Children[seg]
		if !ok {
			return nil, false
		}
		node = c
	}
	return node, true
}

// Walk visits n and its descendants in display order, n at depth 0. If fn
// returns false the node's children are skipped.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.SortedChildren() {
		c.walk(fn, depth+1)
	}
}

// Depth is the number of segments on the longest path below n.
func (n *Node) Depth() int {
	deepest := 0
	for _, c := range n.Children {
		if d := c.Depth() + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Prune removes every descendant for which keep returns false. Children are
// pruned before their parent is asked.
func (n *Node) Prune(keep func(*Node) bool) {
	for word, c := range n.Children {
		c.Prune(keep)
		if !keep(c) {
			delete(n.Children, word)
		}
	}
}
