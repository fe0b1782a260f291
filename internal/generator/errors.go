package generator

import (
	"errors"
	"fmt"
)

// Errors returned by the generator.
var (
	// ErrInvalidInput indicates a word with disallowed characters or spaces.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecomposition indicates a chunk no rule could advance.
	ErrDecomposition = errors.New("decomposition failed")
)

// InvalidInputError describes a rejected word.
type InvalidInputError struct {
	// Word is the offending input.
	Word string
	// Reason describes the rejection.
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%q rejected: %s", e.Word, e.Reason)
}

// Is implements error matching for InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DecompositionError is returned when a chunk cannot be advanced.
type DecompositionError struct {
	// Word is the word being resolved, if known.
	Word string
	// Chunk is the chunk being assembled.
	Chunk string
	// Remaining holds the letters no rule could consume.
	Remaining string
}

// Error implements the error interface.
func (e *DecompositionError) Error() string {
	if e.Word != "" && e.Word != e.Chunk {
		return fmt.Sprintf("infinite loop on chunk %q of %q, %q left", e.Chunk, e.Word, e.Remaining)
	}
	return fmt.Sprintf("infinite loop on chunk %q, %q left", e.Chunk, e.Remaining)
}

// Is implements error matching for DecompositionError.
func (e *DecompositionError) Is(target error) bool {
	return target == ErrDecomposition
}
