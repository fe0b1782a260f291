package chord

import (
	"strings"
	"unicode"
)

// midCharacters are the symbols after which S, T, L and R mean right-hand keys.
const midCharacters = "JE~*IAU-"

// letterKeys maps unambiguous letters to their key.
var letterKeys = map[rune]Key{
	'X': KeyX,
	'F': KeyF,
	'Z': KeyZ,
	'K': KeyK,
	'P': KeyP,
	'V': KeyV,
	'J': KeyJ,
	'E': KeyE,
	'~': KeyTilde,
	'*': KeyAsterisk,
	'I': KeyI,
	'A': KeyA,
	'U': KeyU,
	'C': KeyC,
	'B': KeyB,
	'G': KeyG,
	'W': KeyW,
	'O': KeyO,
	'Y': KeyY,
}

// sidedKeys maps letters present on both hands to their left and right keys.
var sidedKeys = map[rune][2]Key{
	'S': {KeySLeft, KeySRight},
	'T': {KeyTLeft, KeyTRight},
	'L': {KeyLLeft, KeyLRight},
	'R': {KeyRLeft, KeyRRight},
}

// Parse parses a chord from steno notation.
//
// Letters are case-insensitive. S, T, L and R are read as left-hand keys
// until a middle key or a hyphen is seen, and as right-hand keys afterwards.
// A key given twice fails with a *ConflictError, any other symbol with an
// *UnrecognizedCharacterError.
func Parse(s string) (Chord, error) {
	var c Chord
	leftHand := true

	for offset, r := range s {
		ch := unicode.ToUpper(r)

		if ch == '-' {
			leftHand = false
			continue
		}

		k, ok := lookupKey(ch, leftHand)
		if !ok {
			return Empty, &UnrecognizedCharacterError{Input: s, Char: r, Offset: offset}
		}

		merged, err := c.Merge(New(k))
		if err != nil {
			return Empty, err
		}
		c = merged

		if strings.ContainsRune(midCharacters, ch) {
			leftHand = false
		}
	}

	return c, nil
}

// lookupKey resolves an upper-case symbol to its key.
func lookupKey(ch rune, leftHand bool) (Key, bool) {
	if pair, ok := sidedKeys[ch]; ok {
		if leftHand {
			return pair[0], true
		}
		return pair[1], true
	}
	k, ok := letterKeys[ch]
	return k, ok
}

// MustParse parses a chord and panics on error.
// Use only for known-valid chords in initialization code.
func MustParse(s string) Chord {
	c, err := Parse(s)
	if err != nil {
		panic("invalid chord: " + s + ": " + err.Error())
	}
	return c
}

// ParseStrokes parses a multi-stroke outline such as "KAT/TO".
func ParseStrokes(s, delimiter string) ([]Chord, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, delimiter)
	chords := make([]Chord, 0, len(parts))
	for _, p := range parts {
		c, err := Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		chords = append(chords, c)
	}
	return chords, nil
}

// JoinStrokes prints chords as one outline separated by delimiter.
func JoinStrokes(chords []Chord, delimiter string) string {
	parts := make([]string, len(chords))
	for i, c := range chords {
		parts[i] = c.String()
	}
	return strings.Join(parts, delimiter)
}
