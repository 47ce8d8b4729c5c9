package render

import (
	"strings"

	"github.com/ledgertree/ledgertree/internal/amount"
	"github.com/ledgertree/ledgertree/internal/trie"
)

const indent = "  "

// Row is one display line of the account tree.
type Row struct {
	Depth  int
	Name   string // indented segment
	Path   string
	Closed bool
	Amount amount.Summary
}

// TreeRows flattens the tree in display order. The unnamed root of a full
// tree is not a row; a subtree's top node is.
func TreeRows(root *trie.Node) []Row {
	offset := 0
	if root.Word == "" {
		offset = 1
	}

	var rows []Row
	root.Walk(func(n *trie.Node, depth int) bool {
		if n.Word == "" {
			return true
		}
		d := depth - offset
		rows = append(rows, Row{
			Depth:  d,
			Name:   strings.Repeat(indent, d) + n.Word,
			Path:   n.Path,
			Closed: n.Val != nil && !n.Val.IsOpen(),
			Amount: n.Amount,
		})
		return true
	})
	return rows
}

// TreeView is the JSON shape of a tree node.
type TreeView struct {
	Name        string            `json:"name"`
	Path        string            `json:"path"`
	Status      string            `json:"status,omitempty"`
	IsLeaf      bool              `json:"is_leaf"`
	Detail      map[string]string `json:"detail"`
	Calculated  string            `json:"calculated"`
	Commodity   string            `json:"commodity,omitempty"`
	Approximate bool              `json:"approximate"`
	Children    []TreeView        `json:"children,omitempty"`
}

// NewTreeView converts n and its descendants, children in display order.
func NewTreeView(n *trie.Node) TreeView {
	v := TreeView{
		Name:        n.Word,
		Path:        n.Path,
		IsLeaf:      n.IsLeaf(),
		Detail:      make(map[string]string, len(n.Amount.Detail)),
		Calculated:  n.Amount.Calculated.String(),
		Commodity:   n.Amount.Commodity,
		Approximate: n.Amount.Approximate,
	}
	if n.Val != nil {
		v.Status = string(n.Val.Status)
	}
	for commodity, d := range n.Amount.Detail {
		v.Detail[commodity] = d.String()
	}
	for _, c := range n.SortedChildren() {
		v.Children = append(v.Children, NewTreeView(c))
	}
	return v
}
