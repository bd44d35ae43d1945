// Package intervalmap implements a total map over an ordered key range,
// represented as a sorted list of interval start points. The map is kept
// canonical after every operation: no two adjacent intervals carry equal
// values, and the first interval starts at the minimum key.
package intervalmap

import (
	"cmp"
	"slices"
	"sort"
)

type entry[K cmp.Ordered, V comparable] struct {
	key K
	val V
}

// IntervalMap maps every key in [min, ∞) to a value, defaulting to the
// value supplied at construction.
type IntervalMap[K cmp.Ordered, V comparable] struct {
	entries []entry[K, V]
}

// New creates a map assigning def to the entire key range starting at min.
func New[K cmp.Ordered, V comparable](min K, def V) *IntervalMap[K, V] {
	return &IntervalMap[K, V]{entries: []entry[K, V]{{key: min, val: def}}}
}

// Assign sets [lo, hi) to v. Empty intervals are a no-op.
func (m *IntervalMap[K, V]) Assign(lo, hi K, v V) {
	if !(lo < hi) {
		return
	}

	obsoleteBegin := m.upperBound(lo) - 1
	obsoleteEnd := m.upperBound(hi) - 1
	valBehind := m.entries[obsoleteEnd].val

	if obsoleteBegin == 0 || m.entries[obsoleteBegin].key < lo {
		obsoleteBegin++
	}

	m.entries = slices.Delete(m.entries, obsoleteBegin, obsoleteEnd+1)

	hint := obsoleteBegin - 1
	hint = m.emplace(hint, lo, v)
	m.emplace(hint, hi, valBehind)
}

// Get returns the value assigned to key.
func (m *IntervalMap[K, V]) Get(key K) V {
	return m.entries[m.upperBound(key)-1].val
}

// IsConstant reports whether the whole range carries a single value.
func (m *IntervalMap[K, V]) IsConstant() bool {
	return len(m.entries) == 1
}

// upperBound returns the index of the first entry with key > k.
func (m *IntervalMap[K, V]) upperBound(k K) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return k < m.entries[i].key
	})
}

// emplace inserts (key, val) after hint unless the entry at hint already
// carries val, preserving canonical form. It returns the index holding val.
func (m *IntervalMap[K, V]) emplace(hint int, key K, val V) int {
	if m.entries[hint].val == val {
		return hint
	}
	if m.entries[hint].key < key {
		hint++
		m.entries = slices.Insert(m.entries, hint, entry[K, V]{key: key, val: val})
		return hint
	}
	m.entries[hint].val = val
	return hint
}
