// Package chord provides steno chord types and parsing for the generator.
//
// This package defines the fundamental types for representing steno strokes:
//
//   - Key: Identifies one of the 27 keys of the Polish steno layout
//   - Chord: A set of keys pressed together (one stroke)
//   - Item: A text fragment paired with the chord that types it
//   - Sequence: An ordered list of items forming a word outline
//
// # Chord Notation
//
// Chords are written in steno order, left hand first:
//
//	XFZSKTPVLR JE~*IAU CRLBSGTWOY
//
// The letters S, T, L and R exist on both hands. A character is read as a
// left-hand key until any middle key (J, E, ~, *, I, A, U) or a hyphen has
// been seen. A chord without middle keys prints a hyphen before its
// right-hand keys so that the printed form always parses back to the same
// chord:
//
//	"KT"   - left K and left T
//	"K-T"  - left K and right T
//	"KAT"  - left K, A and right T (the middle key replaces the hyphen)
//
// Parsing does not enforce steno order, so "-LR" and "-RL" are the same
// chord; String always prints the canonical order.
//
// # Merging
//
// Merge is a set union that refuses overlapping keys. It never partially
// applies: either a new chord is returned or an error describing the
// conflict.
package chord
