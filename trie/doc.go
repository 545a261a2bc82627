/*
Package trie implements an immutable, memory-efficient prefix trie over
generically ordered tokens, backed by a LOUDS succinct tree (package
louds) and its rank/select collaborator (package bitvec).

Two flavors share the same frozen representation: Trie[T] is a set of
keys, MapTrie[T, V] additionally associates a value with each key. Both
are built in two phases — accumulate keys into a Builder or MapBuilder,
then Build() once to freeze into the immutable, query-only form. There
is no way to insert into an already-built Trie or MapTrie.

Queries are exposed as lazy iter.Seq/iter.Seq2 sequences (Go 1.23
range-over-func): a caller ranging over StartsWith, PrefixesOf or
Postfix can break out early without the package ever materializing a
full result slice.
*/
package trie
