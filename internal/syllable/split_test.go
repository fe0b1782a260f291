package syllable

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"przebiegłość", []string{"prze", "bieg", "łość"}},
		{"wyniosły", []string{"wy", "nios", "ły"}},
		{"aorta", []string{"a", "or", "ta"}},
		{"towot", []string{"to", "wot"}},
		{"dodekahedron", []string{"do", "de", "ka", "hed", "ron"}},
		{"kościół", []string{"koś", "ciół"}},
		{"zawżdy", []string{"zaw", "żdy"}},
		{"spółgłoska", []string{"spół", "głos", "ka"}},
		{"kuchta", []string{"kuch", "ta"}},
		{"marzanna", []string{"ma", "rzan", "na"}},
		{"marznąć", []string{"marz", "nąć"}},
		{"kotek", []string{"ko", "tek"}},
		{"szczotka", []string{"szczot", "ka"}},
	}

	for _, tt := range tests {
		got := Split(tt.word)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSplitWithoutVowels(t *testing.T) {
	tests := []string{"pst", "w", "brr"}
	for _, word := range tests {
		got := Split(word)
		if len(got) != 1 || got[0] != word {
			t.Errorf("Split(%q) = %q, want single chunk", word, got)
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Errorf("Split(\"\") = %q, want no chunks", got)
	}
}

func TestSplitCoverage(t *testing.T) {
	words := []string{
		"przebiegłość", "kościół", "źdźbło", "chrząszcz", "aorta",
		"eukaliptus", "bezwzględny", "xylofon", "qwerty", "ósemka",
		"zażółć", "gęślą", "jaźń", "strzała", "a", "pst",
	}

	for _, word := range words {
		chunks := Split(word)
		if got := strings.Join(chunks, ""); got != word {
			t.Errorf("Split(%q) = %q does not reconstruct the word", word, chunks)
		}
		for _, c := range chunks {
			if c == "" {
				t.Errorf("Split(%q) produced an empty chunk: %q", word, chunks)
			}
		}
	}
}
