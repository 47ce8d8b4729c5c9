// Package trie builds the account hierarchy from colon-delimited account
// names and rolls balances up from the leaves.
package trie

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ledgertree/ledgertree/internal/amount"
	"github.com/ledgertree/ledgertree/internal/model"
)

var (
	// ErrEmptyName is returned for an account without a name.
	ErrEmptyName = errors.New("empty account name")
	// ErrEmptySegment is returned for a name such as "Assets::Bank".
	ErrEmptySegment = errors.New("empty account name segment")
)

// InvalidInputError identifies an account record that could not be placed
// in the tree.
type InvalidInputError struct {
	Index int
	Name  string
	Err   error
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("account #%d %q: %v", e.Index, e.Name, e.Err)
}

func (e InvalidInputError) Unwrap() error {
	return e.Err
}

// Node is one path segment of the account hierarchy.
type Node struct {
	Word     string
	Path     string
	Val      *model.Account // nil when the node is only a path component
	Children map[string]*Node
	Amount   amount.Summary
}

// Split breaks an account name into its segments.
func Split(name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	segments := strings.Split(name, model.AccountSeparator)
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			return nil, ErrEmptySegment
		}
	}
	return segments, nil
}

// Build returns a tree holding every well-formed account. Malformed names
// are skipped and reported; whether that aborts the caller's work is up to
// the caller. When two accounts share a full name the later one is kept.
func Build(accounts []model.Account) (*Node, []InvalidInputError) {
	root := newNode("", "")
	var errs []InvalidInputError

	for i := range accounts {
		acct := accounts[i]
		segments, err := Split(acct.Name)
		if err != nil {
			errs = append(errs, InvalidInputError{Index: i, Name: acct.Name, Err: err})
			continue
		}

		node := root
		for _, seg := range segments {
			node = node.child(seg)
		}
		node.Val = &acct
	}
	return root, errs
}

func newNode(word, path string) *Node {
	return &Node{Word: word, Path: path, Children: make(map[string]*Node)}
}

// child returns the child for word, creating it if needed.
func (n *Node) child(word string) *Node {
	if c, ok := n.Children[word]; ok {
		return c
	}
	path := word
	if n.Path != "" {
		path = n.Path + model.AccountSeparator + word
	}
	c := newNode(word, path)
	n.Children[word] = c
	return c
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// SortedChildren returns the children in lexicographic order.
func (n *Node) SortedChildren() []*Node {
	words := make([]string, 0, len(n.Children))
	for w := range n.Children {
		words = append(words, w)
	}
	sort.Strings(words)

	out := make([]*Node, len(words))
	for i, w := range words {
		out[i] = n.Children[w]
	}
	return out
}
