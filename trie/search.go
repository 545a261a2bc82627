package trie

import (
	"cmp"
	"iter"

	"github.com/forestrie/go-loudstrie/louds"
)

// dropSeq2 adapts an iter.Seq2 to an iter.Seq by discarding the second
// element of every pair, for the set-flavor facades built on the same
// internal Seq2-producing engine the map flavor exposes directly.
func dropSeq2[K any, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		seq(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// descend walks prefix token-by-token from the root, returning the node
// reached if every token matched a child, or (_, false) if any token
// does not.
func descend[T cmp.Ordered, V any](c *core[T, V], prefix []T) (louds.NodeNum, bool) {
	node := louds.RootNode
	for _, tok := range prefix {
		first, last := c.l.ChildRange(node)
		idx, ok := findChild(c, first, last, tok)
		if !ok {
			return 0, false
		}
		node = c.l.IndexToNode(idx)
	}
	return node, true
}

// isExact reports whether key names a terminal node.
func isExact[T cmp.Ordered, V any](c *core[T, V], key []T) bool {
	node, ok := descend(c, key)
	return ok && c.terminalAt(node)
}

// isPrefix reports whether key names any node at all — i.e. whether
// some stored key has key as a prefix. The empty key names the root, so
// it reports true even when nothing was stored.
func isPrefix[T cmp.Ordered, V any](c *core[T, V], key []T) bool {
	_, ok := descend(c, key)
	return ok
}

// getValue returns the value stored at key, if key is terminal.
func getValue[T cmp.Ordered, V any](c *core[T, V], key []T) (V, bool) {
	var zero V
	node, ok := descend(c, key)
	if !ok || !c.terminalAt(node) {
		return zero, false
	}
	return c.valueAt(node), true
}

// frame is one level of the explicit DFS stack walkSubtree maintains in
// place of recursion. pushed is false only for the walk's starting
// frame, whose token (if any) belongs to the caller-supplied prefix
// rather than to a push this walk performed.
type frame struct {
	next, last louds.ChildIndex
	pushed     bool
}

// walkSubtree performs a lexicographic depth-first traversal of the
// subtree rooted at start, yielding (path, value) for every terminal
// node reached. path is seeded with initial (typically the prefix
// already consumed to reach start, or nil for a suffix-only walk) and
// is mutated and restored in place — yield receives a fresh copy each
// time. Returns false if the caller broke out early via yield.
func walkSubtree[T cmp.Ordered, V any](c *core[T, V], start louds.NodeNum, initial []T, yield func([]T, V) bool) bool {
	path := append([]T(nil), initial...)

	if c.terminalAt(start) {
		if !yield(append([]T(nil), path...), c.valueAt(start)) {
			return false
		}
	}

	first, last := c.l.ChildRange(start)
	stack := []frame{{next: first, last: last, pushed: false}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.last {
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if popped.pushed {
				path = path[:len(path)-1]
			}
			continue
		}

		idx := top.next
		top.next++
		childNode := c.l.IndexToNode(idx)
		path = append(path, c.tokenAt(childNode))

		if c.terminalAt(childNode) {
			if !yield(append([]T(nil), path...), c.valueAt(childNode)) {
				return false
			}
		}

		cf, cl := c.l.ChildRange(childNode)
		stack = append(stack, frame{next: cf, last: cl, pushed: true})
	}
	return true
}

func startsWith[T cmp.Ordered, V any](c *core[T, V], prefix []T) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		node, ok := descend(c, prefix)
		if !ok {
			return
		}
		walkSubtree(c, node, prefix, yield)
	}
}

func postfix[T cmp.Ordered, V any](c *core[T, V], prefix []T) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		node, ok := descend(c, prefix)
		if !ok {
			return
		}
		walkSubtree(c, node, nil, yield)
	}
}

func prefixesOf[T cmp.Ordered, V any](c *core[T, V], key []T) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		node := louds.RootNode
		path := make([]T, 0, len(key))
		for _, tok := range key {
			first, last := c.l.ChildRange(node)
			idx, ok := findChild(c, first, last, tok)
			if !ok {
				return
			}
			node = c.l.IndexToNode(idx)
			path = append(path, tok)
			if c.terminalAt(node) {
				if !yield(append([]T(nil), path...), c.valueAt(node)) {
					return
				}
			}
		}
	}
}

func longestPrefix[T cmp.Ordered, V any](c *core[T, V], key []T) ([]T, V, bool) {
	node := louds.RootNode
	path := make([]T, 0, len(key))

	var bestValue V
	bestLen := -1
	for _, tok := range key {
		first, last := c.l.ChildRange(node)
		idx, ok := findChild(c, first, last, tok)
		if !ok {
			break
		}
		node = c.l.IndexToNode(idx)
		path = append(path, tok)
		if c.terminalAt(node) {
			bestLen = len(path)
			bestValue = c.valueAt(node)
		}
	}
	if bestLen < 0 {
		var zero V
		return nil, zero, false
	}
	return append([]T(nil), path[:bestLen]...), bestValue, true
}
