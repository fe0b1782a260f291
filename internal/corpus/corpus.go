package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/plsteno/internal/affix"
)

// FormSeparator separates the forms of one entry.
const FormSeparator = ", "

// DefaultMinLength is the shortest word kept by default.
const DefaultMinLength = 2

// maxLineSize bounds a single corpus line.
const maxLineSize = 1 << 20

// SanitizeFunc normalizes a word or rejects it.
type SanitizeFunc func(word string) (string, error)

// Options control how a corpus is read.
type Options struct {
	// Sanitize normalizes each form. Forms it rejects are counted and
	// skipped. Nil keeps forms as trimmed.
	Sanitize SanitizeFunc

	// MinLength is the minimum rune count of a kept word.
	// Zero means DefaultMinLength.
	MinLength int

	// FirstFormOnly keeps only the first form of each line.
	FirstFormOnly bool
}

// Stats counts what happened to the forms of a corpus.
type Stats struct {
	Lines      int
	Forms      int
	Rejected   int
	Short      int
	Duplicates int
	Words      int
}

// Load reads the corpus file at path.
func Load(ctx context.Context, path string, opts Options) ([]string, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	return Read(ctx, f, opts)
}

// Read reads a corpus from r and returns the kept words, shortest first.
// Ties are ordered lexicographically.
func Read(ctx context.Context, r io.Reader, opts Options) ([]string, Stats, error) {
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	var stats Stats
	seen := make(map[string]struct{})
	words := make([]string, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if stats.Lines%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}
		stats.Lines++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		forms := strings.Split(line, FormSeparator)
		if opts.FirstFormOnly {
			forms = forms[:1]
		}

		for _, form := range forms {
			form = strings.TrimSpace(form)
			if form == "" {
				continue
			}
			stats.Forms++

			word := form
			if opts.Sanitize != nil {
				clean, err := opts.Sanitize(form)
				if err != nil {
					stats.Rejected++
					continue
				}
				word = clean
			}

			if utf8.RuneCountInString(word) < minLen {
				stats.Short++
				continue
			}
			if _, dup := seen[word]; dup {
				stats.Duplicates++
				continue
			}
			seen[word] = struct{}{}
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading corpus: %w", err)
	}

	sort.Slice(words, func(i, j int) bool {
		return affix.ShortestFirst(words[i], words[j])
	})
	stats.Words = len(words)

	return words, stats, nil
}
