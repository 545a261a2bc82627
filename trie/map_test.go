package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapLastWriteWins(t *testing.T) {
	b := NewMapBuilder[byte, int]()
	b.Insert([]byte("すし"), 0)
	b.Insert([]byte("すしや"), 1)
	b.Insert([]byte("すし"), 6)
	b.Insert([]byte("🍣"), 7)
	m := b.Build()

	v, ok := m.GetValue([]byte("すし"))
	require.True(t, ok)
	require.Equal(t, 6, v)

	v, ok = m.GetValue([]byte("🍣"))
	require.True(t, ok)
	require.Equal(t, 7, v)

	_, ok = m.GetValue([]byte("🍜"))
	require.False(t, ok)
}

func TestMapUpdateMutatesInPlace(t *testing.T) {
	b := NewMapBuilder[byte, int]()
	b.Insert([]byte("🍣"), 7)
	m := b.Build()

	found := m.Update([]byte("🍣"), func(old int, found bool) int {
		require.True(t, found)
		require.Equal(t, 7, old)
		return 8
	})
	require.True(t, found)

	v, ok := m.GetValue([]byte("🍣"))
	require.True(t, ok)
	require.Equal(t, 8, v)
}

func TestMapUpdateOnMissingKeyReportsNotFound(t *testing.T) {
	b := NewMapBuilder[byte, int]()
	b.Insert([]byte("🍣"), 7)
	m := b.Build()

	called := false
	found := m.Update([]byte("🍜"), func(old int, found bool) int {
		called = true
		require.False(t, found)
		require.Zero(t, old)
		return 99
	})
	require.True(t, called)
	require.False(t, found)

	_, ok := m.GetValue([]byte("🍜"))
	require.False(t, ok)
}

func TestMapValuePtr(t *testing.T) {
	b := NewMapBuilder[byte, int]()
	b.Insert([]byte("🍣"), 7)
	m := b.Build()

	p, ok := m.ValuePtr([]byte("🍣"))
	require.True(t, ok)
	*p = 42

	v, ok := m.GetValue([]byte("🍣"))
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = m.ValuePtr([]byte("🍜"))
	require.False(t, ok)
}

func TestMapStartsWithYieldsPairs(t *testing.T) {
	b := NewMapBuilder[byte, int]()
	b.Insert([]byte("すし"), 1)
	b.Insert([]byte("すしや"), 2)
	m := b.Build()

	type pair struct {
		key   string
		value int
	}
	var got []pair
	for k, v := range m.StartsWith([]byte("すし")) {
		got = append(got, pair{string(k), v})
	}
	want := []pair{{"すし", 1}, {"すしや", 2}}
	require.Equal(t, want, got)
}
