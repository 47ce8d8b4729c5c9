package trie

import "github.com/ledgertree/ledgertree/internal/amount"

// Aggregate fills in Amount on every node, children before parents. Each
// node's detail is its own balances plus the details of all its children.
//
// An account with an unparseable balance contributes nothing; one ParseError
// per bad commodity is returned and the rest of the tree is still summed.
func Aggregate(root *Node, policy amount.Policy) []amount.ParseError {
	var errs []amount.ParseError
	aggregate(root, policy, &errs)
	return errs
}

func aggregate(n *Node, policy amount.Policy, errs *[]amount.ParseError) amount.Detail {
	detail := amount.Detail{}
	if n.Val != nil {
		own, perrs := amount.Parse(n.Val.Name, n.Val.Balances)
		if len(perrs) > 0 {
			*errs = append(*errs, perrs...)
		} else {
			detail.Merge(own)
		}
	}
	for _, c := range n.SortedChildren() {
		detail.Merge(aggregate(c, policy, errs))
	}
	n.Amount = amount.Summarize(detail, policy)
	return detail
}
