package chord

import "fmt"

// Key identifies a single key of the steno keyboard.
// Keys are numbered in steno order, which is also the bit order of Chord.
type Key uint8

const (
	// Left hand
	KeyX Key = iota
	KeyF
	KeyZ
	KeySLeft
	KeyK
	KeyTLeft
	KeyP
	KeyV
	KeyLLeft
	KeyRLeft

	// Middle
	KeyJ
	KeyE
	KeyTilde
	KeyAsterisk
	KeyI
	KeyA
	KeyU

	// Right hand
	KeyC
	KeyRRight
	KeyLRight
	KeyB
	KeySRight
	KeyG
	KeyTRight
	KeyW
	KeyO
	KeyY

	// NumKeys is the number of keys on the layout.
	NumKeys = int(KeyY) + 1
)

// keyLetters holds the printed letter of every key, indexed by Key.
var keyLetters = [NumKeys]byte{
	'X', 'F', 'Z', 'S', 'K', 'T', 'P', 'V', 'L', 'R',
	'J', 'E', '~', '*', 'I', 'A', 'U',
	'C', 'R', 'L', 'B', 'S', 'G', 'T', 'W', 'O', 'Y',
}

// Letter returns the character used for the key in chord notation.
func (k Key) Letter() byte {
	if int(k) >= NumKeys {
		return '?'
	}
	return keyLetters[k]
}

// String returns a human-readable name for the key.
// Keys present on both hands carry an "L-" or "-R" style marker.
func (k Key) String() string {
	if int(k) >= NumKeys {
		return fmt.Sprintf("Key(%d)", k)
	}
	switch {
	case k.IsLeft():
		return string(k.Letter()) + "-"
	case k.IsRight():
		return "-" + string(k.Letter())
	default:
		return string(k.Letter())
	}
}

// IsLeft returns true if the key belongs to the left hand.
func (k Key) IsLeft() bool {
	return k <= KeyRLeft
}

// IsMiddle returns true if the key is a middle (thumb and vowel) key.
func (k Key) IsMiddle() bool {
	return k >= KeyJ && k <= KeyU
}

// IsRight returns true if the key belongs to the right hand.
func (k Key) IsRight() bool {
	return k >= KeyC && int(k) < NumKeys
}

// AllKeys returns every key in steno order.
func AllKeys() []Key {
	keys := make([]Key, NumKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
