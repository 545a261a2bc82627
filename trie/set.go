package trie

import (
	"cmp"
	"iter"
)

// Trie is an immutable set of token-sequence keys, queried by exact
// match, prefix, and lazily-iterated search. Build one with Builder.
type Trie[T cmp.Ordered] struct {
	core core[T, struct{}]
}

// IsExact reports whether key was inserted.
func (t *Trie[T]) IsExact(key []T) bool {
	return isExact(&t.core, key)
}

// IsPrefix reports whether key is a prefix of some inserted key
// (key itself need not have been inserted). The empty key matches the
// root and always reports true, even for a trie with no keys.
func (t *Trie[T]) IsPrefix(key []T) bool {
	return isPrefix(&t.core, key)
}

// StartsWith lazily yields every inserted key having prefix as a
// prefix, in ascending lexicographic order. An empty prefix yields
// every key in the trie. Ranging with break stops the underlying
// traversal immediately.
func (t *Trie[T]) StartsWith(prefix []T) iter.Seq[[]T] {
	return dropSeq2(startsWith(&t.core, prefix))
}

// PrefixesOf lazily yields every inserted key that is a prefix of key
// (key itself included, if inserted), in ascending length order.
func (t *Trie[T]) PrefixesOf(key []T) iter.Seq[[]T] {
	return dropSeq2(prefixesOf(&t.core, key))
}

// LongestPrefix returns the longest inserted key that is a prefix of
// key, if any.
func (t *Trie[T]) LongestPrefix(key []T) ([]T, bool) {
	prefix, _, ok := longestPrefix(&t.core, key)
	return prefix, ok
}

// Postfix lazily yields the suffix remaining after prefix for every
// inserted key having prefix as a prefix. A key equal to prefix yields
// the empty suffix.
func (t *Trie[T]) Postfix(prefix []T) iter.Seq[[]T] {
	return dropSeq2(postfix(&t.core, prefix))
}

// Cursor returns a fresh incremental-search cursor positioned at the
// root.
func (t *Trie[T]) Cursor() *Cursor[T, struct{}] {
	return newCursor(&t.core)
}
