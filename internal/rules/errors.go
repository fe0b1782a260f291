package rules

import (
	"errors"
	"fmt"
)

// Errors returned by rule loading.
var (
	// ErrUnsupportedFormat indicates a rule file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported rule file format")

	// ErrIncludeDepthExceeded indicates too many nested includes.
	ErrIncludeDepthExceeded = errors.New("include depth exceeded")
)

// ParseError represents an error while parsing a rule file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// CompileError is returned when a table entry holds an unparsable chord.
type CompileError struct {
	// Table is the table holding the entry.
	Table string
	// Fragment is the text key of the entry.
	Fragment string
	// Chord is the chord notation that failed.
	Chord string
	// Err is the underlying chord error.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s[%q]: chord %q: %v", e.Table, e.Fragment, e.Chord, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
