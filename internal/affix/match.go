package affix

// Direction selects which end of the needle a fragment must match.
type Direction uint8

const (
	// Prefix matches fragments at the start of the needle.
	Prefix Direction = iota
	// Suffix matches fragments at the end of the needle.
	Suffix
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Suffix {
		return "suffix"
	}
	return "prefix"
}

// Match is the result of a successful lookup.
type Match[V any] struct {
	// Text is the matched fragment.
	Text string
	// Value is the value stored for Text.
	Value V
	// Rest is the needle with Text removed.
	Rest string
}

// Longest finds the longest fragment of the table at the given end of the
// needle. Candidate lengths are tried from the needle length (capped by the
// longest fragment in the table) down to minLen; the first hit wins.
// minLen values below one are treated as one.
func Longest[V any](needle string, t *Table[V], minLen int, dir Direction) (Match[V], bool) {
	var zero Match[V]
	if t == nil || needle == "" {
		return zero, false
	}
	if minLen < 1 {
		minLen = 1
	}

	runes := []rune(needle)
	n := len(runes)
	longest := n
	if t.maxLen < longest {
		longest = t.maxLen
	}

	for size := longest; size >= minLen; size-- {
		var candidate, rest string
		if dir == Prefix {
			candidate = string(runes[:size])
			rest = string(runes[size:])
		} else {
			candidate = string(runes[n-size:])
			rest = string(runes[:n-size])
		}

		if v, ok := t.index[candidate]; ok {
			return Match[V]{Text: candidate, Value: v, Rest: rest}, true
		}
	}

	return zero, false
}
