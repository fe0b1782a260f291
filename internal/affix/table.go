package affix

import (
	"sort"
	"unicode/utf8"
)

// Entry is a fragment and its associated value.
type Entry[V any] struct {
	Text  string
	Value V
}

// Table holds fragments keyed by their exact text.
// It is not safe for concurrent mutation.
type Table[V any] struct {
	index map[string]V

	// maxLen is the rune length of the longest fragment.
	maxLen int
}

// NewTable creates an empty table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{
		index: make(map[string]V),
	}
}

// NewTableFrom creates a table from the given entries.
// Later entries replace earlier ones with the same text.
func NewTableFrom[V any](entries []Entry[V]) *Table[V] {
	t := NewTable[V]()
	for _, e := range entries {
		t.Set(e.Text, e.Value)
	}
	return t
}

// Set inserts or replaces a fragment.
func (t *Table[V]) Set(text string, v V) {
	t.index[text] = v
	if n := utf8.RuneCountInString(text); n > t.maxLen {
		t.maxLen = n
	}
}

// Get returns the value stored for the exact text.
func (t *Table[V]) Get(text string) (V, bool) {
	v, ok := t.index[text]
	return v, ok
}

// Has returns true if the exact text is present.
func (t *Table[V]) Has(text string) bool {
	_, ok := t.index[text]
	return ok
}

// Len returns the number of fragments.
func (t *Table[V]) Len() int {
	return len(t.index)
}

// MaxLen returns the rune length of the longest fragment.
func (t *Table[V]) MaxLen() int {
	return t.maxLen
}

// Entries returns all fragments, longest first.
// Fragments of equal length are ordered by descending text.
func (t *Table[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, len(t.index))
	for text, v := range t.index {
		entries = append(entries, Entry[V]{Text: text, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return LongestFirst(entries[i].Text, entries[j].Text)
	})
	return entries
}

// Each calls fn for every fragment in Entries order.
func (t *Table[V]) Each(fn func(text string, v V)) {
	for _, e := range t.Entries() {
		fn(e.Text, e.Value)
	}
}

// LongestFirst reports whether a sorts before b when ordering by descending
// rune length, then descending text.
func LongestFirst(a, b string) bool {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la > lb
	}
	return a > b
}

// ShortestFirst reports whether a sorts before b when ordering by ascending
// rune length, then ascending text.
func ShortestFirst(a, b string) bool {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
