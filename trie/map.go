package trie

import (
	"cmp"
	"iter"
)

// MapTrie is an immutable map from token-sequence keys to values of
// type V, queried by exact match, prefix, and lazily-iterated search.
// Build one with MapBuilder.
type MapTrie[T cmp.Ordered, V any] struct {
	core core[T, V]
}

// GetValue returns the value stored at key, if key was inserted.
func (m *MapTrie[T, V]) GetValue(key []T) (V, bool) {
	return getValue(&m.core, key)
}

// IsExact reports whether key was inserted.
func (m *MapTrie[T, V]) IsExact(key []T) bool {
	return isExact(&m.core, key)
}

// IsPrefix reports whether key is a prefix of some inserted key. The
// empty key matches the root and always reports true.
func (m *MapTrie[T, V]) IsPrefix(key []T) bool {
	return isPrefix(&m.core, key)
}

// StartsWith lazily yields every inserted (key, value) pair having
// prefix as a prefix, in ascending lexicographic key order.
func (m *MapTrie[T, V]) StartsWith(prefix []T) iter.Seq2[[]T, V] {
	return startsWith(&m.core, prefix)
}

// PrefixesOf lazily yields every inserted (key, value) pair whose key
// is a prefix of key, in ascending key-length order.
func (m *MapTrie[T, V]) PrefixesOf(key []T) iter.Seq2[[]T, V] {
	return prefixesOf(&m.core, key)
}

// LongestPrefix returns the longest inserted key that is a prefix of
// key, and its value, if any.
func (m *MapTrie[T, V]) LongestPrefix(key []T) ([]T, V, bool) {
	return longestPrefix(&m.core, key)
}

// Postfix lazily yields, for every inserted key having prefix as a
// prefix, the suffix remaining after prefix paired with its value.
func (m *MapTrie[T, V]) Postfix(prefix []T) iter.Seq2[[]T, V] {
	return postfix(&m.core, prefix)
}

// Update looks up key and calls fn with its current value (the zero
// value of V if key is absent or not terminal) and whether it was
// found. If found, the node table's value slot is overwritten with
// fn's result in place. Update reports whether key was found; it never
// creates new keys (the trie is immutable past Build).
//
// Concurrent Update calls against the same MapTrie require external
// synchronization — this package does not lock the value slot.
func (m *MapTrie[T, V]) Update(key []T, fn func(old V, found bool) V) bool {
	node, ok := descend(&m.core, key)
	found := ok && m.core.terminalAt(node)

	var old V
	if found {
		old = m.core.valueAt(node)
	}
	newValue := fn(old, found)
	if found {
		m.core.nodes[node-2].value = newValue
	}
	return found
}

// ValuePtr returns a pointer directly into the node table's value slot
// for key, if key was inserted. The pointer remains valid for the
// MapTrie's lifetime; writes through it are visible to later GetValue
// calls but, like Update, are not synchronized against concurrent use.
func (m *MapTrie[T, V]) ValuePtr(key []T) (*V, bool) {
	node, ok := descend(&m.core, key)
	if !ok || !m.core.terminalAt(node) {
		return nil, false
	}
	return &m.core.nodes[node-2].value, true
}

// Cursor returns a fresh incremental-search cursor positioned at the
// root.
func (m *MapTrie[T, V]) Cursor() *Cursor[T, V] {
	return newCursor(&m.core)
}
