package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sushiKeys() [][]byte {
	return [][]byte{
		[]byte("すし"),
		[]byte("すしや"),
		[]byte("すしだね"),
		[]byte("すしづめ"),
		[]byte("すしめし"),
		[]byte("すしをにぎる"),
		[]byte("🍣"),
	}
}

func buildSushiTrie(t *testing.T) *Trie[byte] {
	t.Helper()
	b := NewBuilder[byte]()
	for _, k := range sushiKeys() {
		b.Insert(k)
	}
	return b.Build()
}

func TestIsExact(t *testing.T) {
	tr := buildSushiTrie(t)

	require.True(t, tr.IsExact([]byte("すし")))
	require.False(t, tr.IsExact([]byte("🍜")))
}

func TestStartsWithOrdersLexicographically(t *testing.T) {
	tr := buildSushiTrie(t)

	got := collectAll(tr.StartsWith([]byte("すし")))
	want := [][]byte{
		[]byte("すし"),
		[]byte("すしだね"),
		[]byte("すしづめ"),
		[]byte("すしめし"),
		[]byte("すしや"),
		[]byte("すしをにぎる"),
	}
	require.Equal(t, want, got)
}

func TestStartsWithEmptyPrefixYieldsEverything(t *testing.T) {
	tr := buildSushiTrie(t)

	got := collectAll(tr.StartsWith(nil))
	require.Len(t, got, len(sushiKeys()))
}

func TestStartsWithAbsentPrefixIsEmpty(t *testing.T) {
	tr := buildSushiTrie(t)

	require.Empty(t, collectAll(tr.StartsWith([]byte("🍜"))))
}

func TestStartsWithBreakStopsEarly(t *testing.T) {
	tr := buildSushiTrie(t)

	var visited int
	for range tr.StartsWith([]byte("すし")) {
		visited++
		if visited == 2 {
			break
		}
	}
	require.Equal(t, 2, visited)
}

func TestPrefixesOf(t *testing.T) {
	tr := buildSushiTrie(t)

	got := collectAll(tr.PrefixesOf([]byte("すしや")))
	want := [][]byte{[]byte("すし"), []byte("すしや")}
	require.Equal(t, want, got)
}

func TestPrefixesOfStopsAtFirstUnmatchedToken(t *testing.T) {
	tr := buildSushiTrie(t)

	got := collectAll(tr.PrefixesOf([]byte("すしゆき")))
	require.Equal(t, [][]byte{[]byte("すし")}, got)
}

func TestLongestPrefix(t *testing.T) {
	tr := buildSushiTrie(t)

	got, ok := tr.LongestPrefix([]byte("すしやき"))
	require.True(t, ok)
	require.Equal(t, []byte("すしや"), got)

	_, ok = tr.LongestPrefix([]byte("🍜"))
	require.False(t, ok)
}

func TestPostfix(t *testing.T) {
	tr := buildSushiTrie(t)

	got := collectAll(tr.Postfix([]byte("すし")))
	want := [][]byte{
		nil,
		[]byte("だね"),
		[]byte("づめ"),
		[]byte("めし"),
		[]byte("や"),
		[]byte("をにぎる"),
	}
	require.Equal(t, want, got)
}

func TestMultiWordStringTokens(t *testing.T) {
	b := NewBuilder[string]()
	b.Insert([]string{"a", "woman"})
	b.Insert([]string{"a", "woman", "on", "the", "beach"})
	b.Insert([]string{"a", "woman", "on", "the", "run"})
	tr := b.Build()

	var got [][]string
	for k := range tr.StartsWith([]string{"a", "woman", "on"}) {
		got = append(got, append([]string(nil), k...))
	}
	want := [][]string{
		{"a", "woman", "on", "the", "beach"},
		{"a", "woman", "on", "the", "run"},
	}
	require.Equal(t, want, got)

	var prefixes [][]string
	for k := range tr.PrefixesOf([]string{"a", "woman", "on", "the", "beach"}) {
		prefixes = append(prefixes, append([]string(nil), k...))
	}
	wantPrefixes := [][]string{
		{"a", "woman"},
		{"a", "woman", "on", "the", "beach"},
	}
	require.Equal(t, wantPrefixes, prefixes)
}
