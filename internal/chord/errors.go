package chord

import (
	"errors"
	"fmt"
)

// Errors returned by chord operations.
var (
	// ErrConflict indicates two chords press the same key.
	ErrConflict = errors.New("conflicting keys")

	// ErrUnrecognizedCharacter indicates a symbol outside the key alphabet.
	ErrUnrecognizedCharacter = errors.New("unrecognized character")

	// ErrInvalidCombination indicates a chord contains a forbidden combination.
	ErrInvalidCombination = errors.New("invalid key combination")
)

// ConflictError is returned when merging chords that share keys.
type ConflictError struct {
	// Left is the chord being merged into.
	Left Chord
	// Right is the chord being merged.
	Right Chord
	// Shared holds the keys pressed in both.
	Shared Chord
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate keys between %s and %s", e.Left, e.Right)
}

// Is implements error matching for ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// UnrecognizedCharacterError is returned when parsing meets an unknown symbol.
type UnrecognizedCharacterError struct {
	// Input is the full string being parsed.
	Input string
	// Char is the offending character.
	Char rune
	// Offset is the byte offset of Char within Input.
	Offset int
}

// Error implements the error interface.
func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q at offset %d in %q", e.Char, e.Offset, e.Input)
}

// Is implements error matching for UnrecognizedCharacterError.
func (e *UnrecognizedCharacterError) Is(target error) bool {
	return target == ErrUnrecognizedCharacter
}

// InvalidCombinationError is returned by validation.
type InvalidCombinationError struct {
	// Chord is the chord that failed validation.
	Chord Chord
	// Combination is the forbidden combination it contains.
	Combination Chord
}

// Error implements the error interface.
func (e *InvalidCombinationError) Error() string {
	return fmt.Sprintf("invalid chord %s: contains invalid combination %s", e.Chord, e.Combination)
}

// Is implements error matching for InvalidCombinationError.
func (e *InvalidCombinationError) Is(target error) bool {
	return target == ErrInvalidCombination
}
