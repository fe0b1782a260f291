package chord

import (
	"math/bits"
	"strings"
)

// Chord is a set of steno keys pressed together.
// Bit n is set when Key(n) is pressed. The zero value is the empty chord.
type Chord uint32

// allKeysMask has every key bit set.
const allKeysMask Chord = 1<<NumKeys - 1

// Empty is the chord with no keys pressed.
const Empty Chord = 0

// New creates a chord with the given keys pressed.
func New(keys ...Key) Chord {
	var c Chord
	for _, k := range keys {
		c = c.With(k)
	}
	return c
}

// FullStenoOrder returns the chord with every key pressed.
// It is never a valid stroke and serves as a canary for the deny-list.
func FullStenoOrder() Chord {
	return allKeysMask
}

// Has returns true if the key is pressed in this chord.
func (c Chord) Has(k Key) bool {
	return c&(1<<k) != 0
}

// With returns a copy of the chord with the key pressed.
func (c Chord) With(k Key) Chord {
	return c | 1<<k
}

// Without returns a copy of the chord with the key released.
func (c Chord) Without(k Key) Chord {
	return c &^ (1 << k)
}

// IsEmpty returns true if no key is pressed.
func (c Chord) IsEmpty() bool {
	return c&allKeysMask == 0
}

// Len returns the number of pressed keys.
func (c Chord) Len() int {
	return bits.OnesCount32(uint32(c & allKeysMask))
}

// Keys returns the pressed keys in steno order.
func (c Chord) Keys() []Key {
	keys := make([]Key, 0, c.Len())
	for i := 0; i < NumKeys; i++ {
		if c.Has(Key(i)) {
			keys = append(keys, Key(i))
		}
	}
	return keys
}

// Overlaps returns true if any key is pressed in both chords.
func (c Chord) Overlaps(other Chord) bool {
	return c&other != 0
}

// Merge sums this chord with another.
// It fails with a *ConflictError if a key is pressed in both chords; the
// receiver is never modified.
func (c Chord) Merge(other Chord) (Chord, error) {
	if c.Overlaps(other) {
		return c, &ConflictError{Left: c, Right: other, Shared: c & other}
	}
	// With no shared bits XOR is the union.
	return c ^ other, nil
}

// Contains returns true if every key pressed in other is pressed in c.
func (c Chord) Contains(other Chord) bool {
	return c&other == other
}

// HasMiddle returns true if any middle key is pressed.
func (c Chord) HasMiddle() bool {
	for k := KeyJ; k <= KeyU; k++ {
		if c.Has(k) {
			return true
		}
	}
	return false
}

// Validate checks the chord against the default deny-list.
func (c Chord) Validate() error {
	return c.ValidateAgainst(DefaultDenyList())
}

// ValidateAgainst checks the chord against the given forbidden combinations.
// The full steno order chord is always rejected, whatever the list holds.
func (c Chord) ValidateAgainst(deny []Chord) error {
	for _, combo := range deny {
		if combo.IsEmpty() {
			continue
		}
		if c.Contains(combo) {
			return &InvalidCombinationError{Chord: c, Combination: combo}
		}
	}
	if c == allKeysMask {
		return &InvalidCombinationError{Chord: c, Combination: allKeysMask}
	}
	return nil
}

// String returns the canonical steno notation of the chord.
// Left-hand keys come first, then middle keys, then right-hand keys. A
// hyphen separates the hands when no middle key is pressed.
func (c Chord) String() string {
	var sb strings.Builder
	sb.Grow(NumKeys + 1)

	for k := KeyX; k <= KeyRLeft; k++ {
		if c.Has(k) {
			sb.WriteByte(k.Letter())
		}
	}

	needsHyphen := true
	for k := KeyJ; k <= KeyU; k++ {
		if c.Has(k) {
			sb.WriteByte(k.Letter())
			needsHyphen = false
		}
	}

	if needsHyphen {
		sb.WriteByte('-')
	}

	for k := KeyC; k <= KeyY; k++ {
		if c.Has(k) {
			sb.WriteByte(k.Letter())
		}
	}

	return sb.String()
}

// defaultDenyList holds the combinations no valid stroke may contain.
var defaultDenyList = []string{"XS", "FZ", "L*C", "R~R", "-TY", "-WO", "JIU"}

// DefaultDenyList returns the built-in forbidden key combinations.
func DefaultDenyList() []Chord {
	list, err := ParseDenyList(defaultDenyList)
	if err != nil {
		panic("invalid default deny-list: " + err.Error())
	}
	return list
}

// ParseDenyList parses a list of forbidden combinations.
func ParseDenyList(specs []string) ([]Chord, error) {
	list := make([]Chord, 0, len(specs))
	for _, s := range specs {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}
