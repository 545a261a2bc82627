package trie

import (
	"cmp"
	"sort"

	"github.com/forestrie/go-loudstrie/bitvec"
	"github.com/forestrie/go-loudstrie/louds"
)

// naiveNode is the mutable intermediate tree a Builder/MapBuilder
// accumulates keys into, with children kept sorted by token. It is
// lowered into a core[T, V] by freeze and discarded; nothing about it
// survives into the built Trie/MapTrie.
type naiveNode[T cmp.Ordered, V any] struct {
	token    T
	value    V
	terminal bool
	children []*naiveNode[T, V]
}

// childOrInsert returns n's child labeled tok, splicing a new one into
// the sorted children slice at the correct position if absent.
func (n *naiveNode[T, V]) childOrInsert(tok T) *naiveNode[T, V] {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].token >= tok
	})
	if i < len(n.children) && n.children[i].token == tok {
		return n.children[i]
	}
	child := &naiveNode[T, V]{token: tok}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// insertInto walks root along key, creating nodes as needed, and marks
// the final node terminal with value. An empty key is a no-op — it
// never marks the root itself terminal.
func insertInto[T cmp.Ordered, V any](root *naiveNode[T, V], key []T, value V) {
	if len(key) == 0 {
		return
	}
	cur := root
	for _, tok := range key {
		cur = cur.childOrInsert(tok)
	}
	cur.terminal = true
	cur.value = value
}

// freeze lowers a naiveNode tree into a LOUDS bit-string plus its
// accompanying node table, in a single breadth-first pass. Node numbers
// are assigned in the order each node is first enqueued (i.e. the order
// its '1' bit is pushed), which is exactly the order records are
// appended here — so records[i] always describes NodeNum i+2.
func freeze[T cmp.Ordered, V any](root *naiveNode[T, V]) (*louds.Louds, []node[T, V]) {
	bb := bitvec.NewBuilder()
	bb.PushOne()  // the real root's arrival edge from the virtual super-root
	bb.PushZero() // virtual super-root has exactly one child: the root

	var records []node[T, V]
	queue := []*naiveNode[T, V]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, child := range n.children {
			bb.PushOne()
			records = append(records, node[T, V]{token: child.token, value: child.value, terminal: child.terminal})
			queue = append(queue, child)
		}
		bb.PushZero()
	}
	return louds.New(bb.Freeze()), records
}

// Builder accumulates keys for a set trie. The zero value is not usable;
// construct with NewBuilder. A Builder is not safe for concurrent use.
type Builder[T cmp.Ordered] struct {
	root *naiveNode[T, struct{}]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T cmp.Ordered]() *Builder[T] {
	return &Builder[T]{root: &naiveNode[T, struct{}]{}}
}

// Insert adds key to the set under construction. Re-inserting an
// existing key is a no-op past the first insert (idempotent). An empty
// key is silently ignored.
func (b *Builder[T]) Insert(key []T) {
	insertInto(b.root, key, struct{}{})
}

// Build freezes the accumulated keys into an immutable Trie. The
// Builder remains usable afterward but its further inserts do not
// affect tries already built from it.
func (b *Builder[T]) Build() *Trie[T] {
	l, records := freeze(b.root)
	return &Trie[T]{core: core[T, struct{}]{l: l, nodes: records}}
}

// MapBuilder accumulates (key, value) pairs for a map trie. The zero
// value is not usable; construct with NewMapBuilder. A MapBuilder is
// not safe for concurrent use.
type MapBuilder[T cmp.Ordered, V any] struct {
	root *naiveNode[T, V]
}

// NewMapBuilder returns an empty MapBuilder.
func NewMapBuilder[T cmp.Ordered, V any]() *MapBuilder[T, V] {
	return &MapBuilder[T, V]{root: &naiveNode[T, V]{}}
}

// Insert associates value with key, overwriting any value a prior
// Insert of the same key stored (last-write-wins). An empty key is
// silently ignored.
func (b *MapBuilder[T, V]) Insert(key []T, value V) {
	insertInto(b.root, key, value)
}

// Build freezes the accumulated pairs into an immutable MapTrie.
func (b *MapBuilder[T, V]) Build() *MapTrie[T, V] {
	l, records := freeze(b.root)
	return &MapTrie[T, V]{core: core[T, V]{l: l, nodes: records}}
}
