package trie

import (
	"cmp"

	"github.com/forestrie/go-loudstrie/louds"
)

// node is a single node-table record: the token labeling the edge into
// this node, its stored value (map flavor; struct{} for the set flavor),
// and whether a key ends here. Indexed by NodeNum-2 — node 1 is the root
// and carries no record, since it is reached via no edge.
type node[T cmp.Ordered, V any] struct {
	token    T
	value    V
	terminal bool
}

// core holds the frozen structure shared by Trie and MapTrie: the LOUDS
// navigation layer and its accompanying node table. Both facades hold
// a core field instantiated with their own value type (struct{} for sets).
type core[T cmp.Ordered, V any] struct {
	l     *louds.Louds
	nodes []node[T, V]
}

func (c *core[T, V]) tokenAt(n louds.NodeNum) T {
	return c.nodes[n-2].token
}

func (c *core[T, V]) valueAt(n louds.NodeNum) V {
	return c.nodes[n-2].value
}

func (c *core[T, V]) terminalAt(n louds.NodeNum) bool {
	if n == louds.RootNode {
		return false
	}
	return c.nodes[n-2].terminal
}
