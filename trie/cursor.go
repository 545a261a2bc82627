package trie

import (
	"cmp"

	"github.com/forestrie/go-loudstrie/louds"
)

// Outcome classifies the result of advancing a Cursor by one token.
type Outcome int

const (
	// NoTransition means no child matched; the cursor did not move.
	NoTransition Outcome = iota
	// Prefix means the new node exists and has further children, but
	// does not itself terminate a stored key.
	Prefix
	// Terminal means the new node terminates a stored key and has no
	// further children.
	Terminal
	// PrefixAndTerminal means the new node both terminates a stored
	// key and has further children.
	PrefixAndTerminal
)

func (o Outcome) String() string {
	switch o {
	case NoTransition:
		return "NoTransition"
	case Prefix:
		return "Prefix"
	case Terminal:
		return "Terminal"
	case PrefixAndTerminal:
		return "PrefixAndTerminal"
	default:
		return "Outcome(?)"
	}
}

// Cursor is an incremental search position over a frozen trie. Each
// Advance is O(log deg) — a binary search over the current node's
// sorted children — so walking a full key of length m costs
// O(m log deg). The search iterators in this package do not use a
// Cursor; they keep their own node and path and step with the same
// findChild lookup.
//
// A Cursor is not safe for concurrent use; it borrows the trie for its
// lifetime and carries no owned state beyond the accumulated path.
type Cursor[T cmp.Ordered, V any] struct {
	c    *core[T, V]
	node louds.NodeNum
	path []T
}

func newCursor[T cmp.Ordered, V any](c *core[T, V]) *Cursor[T, V] {
	return &Cursor[T, V]{c: c, node: louds.RootNode}
}

// Reset returns the cursor to the root, discarding its accumulated path.
func (cur *Cursor[T, V]) Reset() {
	cur.node = louds.RootNode
	cur.path = cur.path[:0]
}

// IsTerminal reports whether the cursor's current node terminates a
// stored key, without advancing.
func (cur *Cursor[T, V]) IsTerminal() bool {
	return cur.c.terminalAt(cur.node)
}

// Prefix returns a copy of the tokens consumed since the last Reset (or
// since construction).
func (cur *Cursor[T, V]) Prefix() []T {
	return append([]T(nil), cur.path...)
}

// PrefixLen returns the number of tokens consumed since the last Reset.
func (cur *Cursor[T, V]) PrefixLen() int {
	return len(cur.path)
}

// Advance moves the cursor to the child labeled t, if one exists, and
// reports the resulting Outcome. If no child matches, the cursor is
// left unchanged and NoTransition is returned.
func (cur *Cursor[T, V]) Advance(t T) Outcome {
	idx, ok := cur.findChild(t)
	if !ok {
		return NoTransition
	}
	next := cur.c.l.IndexToNode(idx)
	cur.node = next
	cur.path = append(cur.path, t)
	return outcomeFor(cur.c, next)
}

// Peek reports the Outcome that Advance(t) would produce, without
// moving the cursor. The bool result is false iff t names no child of
// the current node (equivalent to the Outcome being NoTransition).
func (cur *Cursor[T, V]) Peek(t T) (Outcome, bool) {
	idx, ok := cur.findChild(t)
	if !ok {
		return NoTransition, false
	}
	return outcomeFor(cur.c, cur.c.l.IndexToNode(idx)), true
}

func (cur *Cursor[T, V]) findChild(t T) (louds.ChildIndex, bool) {
	first, last := cur.c.l.ChildRange(cur.node)
	return findChild(cur.c, first, last, t)
}

func outcomeFor[T cmp.Ordered, V any](c *core[T, V], n louds.NodeNum) Outcome {
	hasChildren := c.l.Degree(n) > 0
	isTerminal := c.terminalAt(n)
	switch {
	case hasChildren && isTerminal:
		return PrefixAndTerminal
	case hasChildren:
		return Prefix
	default:
		// A leaf is always terminal: it was only ever created as the
		// last token of some inserted key.
		return Terminal
	}
}

// findChild binary-searches [first, last) — a node's LOUDS child
// range, which is sorted by token by construction — for t.
func findChild[T cmp.Ordered, V any](c *core[T, V], first, last louds.ChildIndex, t T) (louds.ChildIndex, bool) {
	n := int(last - first)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if c.tokenAt(c.l.IndexToNode(first+louds.ChildIndex(mid))) < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	i := lo
	if i >= n {
		return 0, false
	}
	idx := first + louds.ChildIndex(i)
	if c.tokenAt(c.l.IndexToNode(idx)) != t {
		return 0, false
	}
	return idx, true
}
