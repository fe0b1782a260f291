package generator

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LetterFunc reports whether a rune may appear in a word.
type LetterFunc func(r rune) bool

// Sanitize normalizes a word and checks it is a single word of allowed
// letters. The result is NFC-normalized and lower-cased with Polish rules.
func Sanitize(word string, isLetter LetterFunc) (string, error) {
	s := strings.TrimSpace(word)
	s = norm.NFC.String(s)
	s = cases.Lower(language.Polish).String(s)

	if s == "" {
		return "", &InvalidInputError{Word: word, Reason: "empty word"}
	}

	for _, r := range s {
		if unicode.IsSpace(r) {
			return "", &InvalidInputError{Word: s, Reason: "must be a single word"}
		}
		if !isLetter(r) {
			return "", &InvalidInputError{
				Word:   s,
				Reason: fmt.Sprintf("character %q is not a Polish or latin letter", r),
			}
		}
	}

	return s, nil
}
