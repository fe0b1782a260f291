package generator

import (
	"errors"
	"strings"
	"testing"
)

func polishLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || strings.ContainsRune("ąćęłńóśźż", r)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kot", "kot"},
		{"  Kot\t", "kot"},
		{"ŻÓŁW", "żółw"},
		{"ZAŻÓŁĆ", "zażółć"},
		// Decomposed ó is composed before the letter check.
		{"ko\u0301t", "k\u00f3t"},
		{"O\u0301w", "\u00f3w"},
	}

	for _, tt := range tests {
		got, err := Sanitize(tt.in, polishLetter)
		if err != nil {
			t.Errorf("Sanitize(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitize_Rejects(t *testing.T) {
	tests := []struct {
		in     string
		reason string
	}{
		{"", "empty"},
		{"  ", "empty"},
		{"kot pies", "single word"},
		{"kot1", "'1'"},
		{"naïve", "'ï'"},
	}

	for _, tt := range tests {
		_, err := Sanitize(tt.in, polishLetter)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Sanitize(%q) error = %v, want ErrInvalidInput", tt.in, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.reason) {
			t.Errorf("Sanitize(%q) error = %q, want mention of %s", tt.in, err, tt.reason)
		}
	}
}
