package chord

import (
	"fmt"
	"strings"
)

// ItemKind tags the role of an item within a sequence.
type ItemKind uint8

const (
	// ItemRoot is a literal root fragment and the chord that types it.
	ItemRoot ItemKind = iota
	// ItemPrefix is a stripped prefix.
	ItemPrefix
	// ItemSuffix is a stripped suffix.
	ItemSuffix
	// ItemKnownRoot references a root resolved earlier.
	ItemKnownRoot
)

// String returns the short tag used when printing items.
func (k ItemKind) String() string {
	switch k {
	case ItemRoot:
		return "RC"
	case ItemPrefix:
		return "P"
	case ItemSuffix:
		return "S"
	case ItemKnownRoot:
		return "KR"
	default:
		return fmt.Sprintf("ItemKind(%d)", k)
	}
}

// Item is one element of a Sequence.
// Root, prefix and suffix items carry a Chord; known-root items carry the
// previously resolved Nested sequence instead.
type Item struct {
	Kind   ItemKind
	Text   string
	Chord  Chord
	Nested *Sequence
}

// RootItem creates a root item.
func RootItem(text string, c Chord) Item {
	return Item{Kind: ItemRoot, Text: text, Chord: c}
}

// PrefixItem creates a prefix item.
func PrefixItem(text string, c Chord) Item {
	return Item{Kind: ItemPrefix, Text: text, Chord: c}
}

// SuffixItem creates a suffix item.
func SuffixItem(text string, c Chord) Item {
	return Item{Kind: ItemSuffix, Text: text, Chord: c}
}

// KnownRootItem creates an item referencing a resolved root.
func KnownRootItem(text string, seq Sequence) Item {
	nested := seq.Clone()
	return Item{Kind: ItemKnownRoot, Text: text, Nested: &nested}
}

// Collapse returns the chords typed for this item.
func (i Item) Collapse() []Chord {
	switch i.Kind {
	case ItemRoot, ItemPrefix, ItemSuffix:
		return []Chord{i.Chord}
	case ItemKnownRoot:
		if i.Nested == nil {
			return nil
		}
		return i.Nested.Collapse()
	default:
		return nil
	}
}

// Equal returns true if two items are structurally identical.
func (i Item) Equal(other Item) bool {
	if i.Kind != other.Kind || i.Text != other.Text {
		return false
	}
	switch i.Kind {
	case ItemKnownRoot:
		if i.Nested == nil || other.Nested == nil {
			return i.Nested == other.Nested
		}
		return i.Nested.Equal(*other.Nested)
	default:
		return i.Chord == other.Chord
	}
}

// String returns the decomposition notation of the item.
// Examples: RC:"ko":KAU, P:"prze-":..., S:"-ek":..., KR:"kot":(RC:"kot":...)
func (i Item) String() string {
	switch i.Kind {
	case ItemRoot:
		return fmt.Sprintf("RC:%q:%s", i.Text, i.Chord)
	case ItemPrefix:
		return fmt.Sprintf("P:%q:%s", i.Text+"-", i.Chord)
	case ItemSuffix:
		return fmt.Sprintf("S:%q:%s", "-"+i.Text, i.Chord)
	case ItemKnownRoot:
		nested := ""
		if i.Nested != nil {
			nested = i.Nested.String()
		}
		return fmt.Sprintf("KR:%q:(%s)", i.Text, nested)
	default:
		return fmt.Sprintf("%s:%q", i.Kind, i.Text)
	}
}

// Sequence is an ordered list of items forming an outline.
// Concatenating the text of all items reconstructs the word.
type Sequence struct {
	Items []Item
}

// NewSequence creates a sequence from the given items.
func NewSequence(items ...Item) Sequence {
	return Sequence{Items: items}
}

// FromChord creates a single-item root sequence.
func FromChord(text string, c Chord) Sequence {
	return NewSequence(RootItem(text, c))
}

// Len returns the number of items.
func (s Sequence) Len() int {
	return len(s.Items)
}

// IsEmpty returns true if the sequence has no items.
func (s Sequence) IsEmpty() bool {
	return len(s.Items) == 0
}

// IsOneShot returns true if the sequence is a single item.
func (s Sequence) IsOneShot() bool {
	return len(s.Items) == 1
}

// Add appends items to the sequence.
func (s *Sequence) Add(items ...Item) {
	s.Items = append(s.Items, items...)
}

// Append returns a new sequence with the items of other after those of s.
func (s Sequence) Append(other Sequence) Sequence {
	items := make([]Item, 0, len(s.Items)+len(other.Items))
	items = append(items, s.Items...)
	items = append(items, other.Items...)
	return Sequence{Items: items}
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s.Items == nil {
		return Sequence{}
	}
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return Sequence{Items: items}
}

// Collapse flattens the sequence into the chords to type, in order.
func (s Sequence) Collapse() []Chord {
	chords := make([]Chord, 0, len(s.Items))
	for _, item := range s.Items {
		chords = append(chords, item.Collapse()...)
	}
	return chords
}

// Word reassembles the text from the sequence items.
func (s Sequence) Word() string {
	var sb strings.Builder
	for _, item := range s.Items {
		sb.WriteString(item.Text)
	}
	return sb.String()
}

// Roots returns the root part of the sequence.
// Prefix and suffix items are dropped and known-root items are replaced by
// the items they reference.
func (s Sequence) Roots() Sequence {
	var out Sequence
	for _, item := range s.Items {
		switch item.Kind {
		case ItemRoot:
			out.Add(item)
		case ItemKnownRoot:
			if item.Nested != nil {
				out.Add(item.Nested.Roots().Items...)
			}
		case ItemPrefix, ItemSuffix:
		}
	}
	return out
}

// Strokes prints the collapsed chords joined by " + ".
func (s Sequence) Strokes() string {
	chords := s.Collapse()
	if len(chords) == 0 {
		return "<empty>"
	}
	return JoinStrokes(chords, " + ")
}

// Outline prints the collapsed chords joined by delimiter.
func (s Sequence) Outline(delimiter string) string {
	return JoinStrokes(s.Collapse(), delimiter)
}

// Equal returns true if both sequences hold identical items in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.Items) != len(other.Items) {
		return false
	}
	for i, item := range s.Items {
		if !item.Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// Key returns a string that is equal for two sequences exactly when the
// sequences are Equal. It is used to index sequences in maps.
func (s Sequence) Key() string {
	return s.String()
}

// String returns the full decomposition, items joined by " + ".
func (s Sequence) String() string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, " + ")
}
